package hltv

import "hltv-crawler/lib/textutil"

// rawRecord holds the text captured from a ranking entry before any
// normalization is applied.
type rawRecord struct {
	position string
	name     string
	points   string
	players  []string
}

func blankToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// clean is the single normalization pass applied to every extracted record,
// blank text becomes nil and numeric fields keep their first run of digits.
// players itself is never nil, only its entries can be.
func clean(raw rawRecord) RankingRecord {
	players := make([]*string, len(raw.players))
	for i, p := range raw.players {
		players[i] = blankToNil(p)
	}
	return RankingRecord{
		Position: textutil.FirstInt(raw.position),
		Name:     blankToNil(raw.name),
		Points:   textutil.FirstInt(raw.points),
		Players:  players,
	}
}
