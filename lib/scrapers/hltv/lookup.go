package hltv

import (
	"hltv-crawler/lib/textutil"

	"github.com/antzucaro/matchr"
)

// minimum jaro-winkler similarity for a name to be considered the same team
const teamSimilarityThreshold = 0.85

// FindTeam looks a team up by name in a ranking. an exact match (ignoring
// case and whitespace) always wins, then a name containing the query
// (ex. "vitality" -> "Team Vitality"), otherwise the most similar name above
// the threshold is returned.
func FindTeam(records []RankingRecord, name string) (RankingRecord, bool) {
	target := textutil.NormalizeName(name)
	if target == "" {
		return RankingRecord{}, false
	}

	containsIdx := -1
	bestIdx := -1
	bestSimilarity := 0.0
	for i, r := range records {
		if r.Name == nil {
			continue
		}
		candidate := textutil.NormalizeName(*r.Name)
		if candidate == target {
			return r, true
		}
		if containsIdx < 0 && textutil.MatchName(candidate, []string{target}) {
			containsIdx = i
		}
		similarity := matchr.JaroWinkler(candidate, target, false)
		if similarity > bestSimilarity {
			bestIdx = i
			bestSimilarity = similarity
		}
	}

	if containsIdx >= 0 {
		return records[containsIdx], true
	}
	if bestIdx < 0 || bestSimilarity < teamSimilarityThreshold {
		return RankingRecord{}, false
	}
	return records[bestIdx], true
}

// FindPlayer returns the team whose roster contains the given nickname.
func FindPlayer(records []RankingRecord, nickname string) (RankingRecord, bool) {
	target := textutil.NormalizeName(nickname)
	if target == "" {
		return RankingRecord{}, false
	}
	for _, r := range records {
		for _, p := range r.Players {
			if p != nil && textutil.NormalizeName(*p) == target {
				return r, true
			}
		}
	}
	return RankingRecord{}, false
}
