package hltv

import (
	"strings"

	"hltv-crawler/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Category string

const (
	CategoryTeam    Category = "team"
	CategoryPlayer  Category = "player"
	CategoryEvent   Category = "event"
	CategoryArticle Category = "article"
)

type Article struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Author string `json:"author"`
}

// SearchResult groups the rows of a search page by category, categories
// without any rows are left nil and omitted when serialized.
type SearchResult struct {
	Team    []string  `json:"team,omitempty"`
	Player  []string  `json:"player,omitempty"`
	Event   []string  `json:"event,omitempty"`
	Article []Article `json:"article,omitempty"`
}

func (r SearchResult) Empty() bool {
	return len(r.Team) == 0 &&
		len(r.Player) == 0 &&
		len(r.Event) == 0 &&
		len(r.Article) == 0
}

func (r SearchResult) Count() int {
	return len(r.Team) + len(r.Player) + len(r.Event) + len(r.Article)
}

func articleFromRow(row *goquery.Selection) Article {
	cells := row.Find("td")
	return Article{
		Title:  htmlutil.Text(cells.Eq(0)),
		Date:   htmlutil.Text(cells.Eq(1)),
		Author: htmlutil.Text(cells.Eq(2)),
	}
}

// ClassifySearchResults reads every result table on a search page. the first
// row of each table body names its category, the rest are its entries.
func ClassifySearchResults(doc *goquery.Document) SearchResult {
	var result SearchResult

	doc.Find("tbody").Each(func(_ int, body *goquery.Selection) {
		rows := body.ChildrenFiltered("tr")
		if rows.Length() == 0 {
			return
		}

		category := Category(strings.ToLower(htmlutil.Text(rows.First())))
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			switch category {
			case CategoryTeam:
				result.Team = append(result.Team, htmlutil.Text(row))
			case CategoryPlayer:
				result.Player = append(result.Player, htmlutil.Text(row))
			case CategoryEvent:
				result.Event = append(result.Event, htmlutil.Text(row))
			case CategoryArticle:
				result.Article = append(result.Article, articleFromRow(row))
			}
		})
	})

	return result
}

func ParseSearchResults(html string) (SearchResult, error) {
	doc, err := parseHtml(html)
	if err != nil {
		return SearchResult{}, err
	}
	return ClassifySearchResults(doc), nil
}
