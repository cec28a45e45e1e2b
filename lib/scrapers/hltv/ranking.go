package hltv

import (
	"strings"

	"hltv-crawler/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the ranking page is made up of div.ranking-header elements, one per team.
// each holds the team's position (span.position) and a div.relative with:
//   - div.teamLine, with the name (span.name) and points (span.points)
//   - div.playersLine, with a div.rankingNicknames > span per player
const (
	selRankingEntry = ".ranking-header"
	selPosition     = "span.position"
	selDetails      = "div.relative"
	selName         = "div.teamLine > span.name"
	selPoints       = "div.teamLine span.points"
	selNicknames    = "div.playersLine > div.rankingNicknames"
)

type RankingRecord struct {
	Position *int      `json:"position"`
	Name     *string   `json:"name"`
	Points   *int      `json:"points"`
	Players  []*string `json:"players"`
}

// ExtractRankingRecord reads a single team out of a ranking entry, sel or one
// of its descendants must be the entry itself.
func ExtractRankingRecord(sel *goquery.Selection) (RankingRecord, error) {
	entry := sel.Filter(selRankingEntry).
		AddSelection(sel.Find(selRankingEntry)).
		First()
	if entry.Length() == 0 {
		return RankingRecord{}, ErrMalformedFragment
	}
	return extractEntry(entry), nil
}

// extractEntry reads a record out of a selection already known to be a
// ranking entry.
func extractEntry(entry *goquery.Selection) RankingRecord {
	raw := rawRecord{
		position: htmlutil.Text(entry.Find(selPosition).First()),
		players:  []string{},
	}

	details := entry.Find(selDetails).First()
	raw.name = htmlutil.Text(details.Find(selName).First())
	raw.points = htmlutil.Text(details.Find(selPoints).First())
	details.Find(selNicknames).Each(func(_ int, nick *goquery.Selection) {
		raw.players = append(raw.players, htmlutil.Text(nick.Find("span")))
	})

	return clean(raw)
}

// ExtractRankingPage extracts every team on a ranking page in the order they
// appear, a page without any entries yields an empty slice.
func ExtractRankingPage(doc *goquery.Document) []RankingRecord {
	entries := doc.Find(selRankingEntry).Not(selRankingEntry + " " + selRankingEntry)

	records := make([]RankingRecord, 0, entries.Length())
	entries.Each(func(_ int, entry *goquery.Selection) {
		records = append(records, extractEntry(entry))
	})
	return records
}

func ParseRankingRecord(fragment string) (RankingRecord, error) {
	doc, err := parseHtml(fragment)
	if err != nil {
		return RankingRecord{}, err
	}
	return ExtractRankingRecord(doc.Selection)
}

func ParseRankingPage(html string) ([]RankingRecord, error) {
	doc, err := parseHtml(html)
	if err != nil {
		return nil, err
	}
	return ExtractRankingPage(doc), nil
}

func parseHtml(html string) (*goquery.Document, error) {
	return ParseDocument(strings.NewReader(html), "text/html; charset=utf-8")
}
