package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"hltv-crawler/lib/scrapers/hltv"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func formatInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

func formatString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatPlayers(players []*string) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = formatString(p)
	}
	return strings.Join(names, ", ")
}

// RenderRanking prints records as a table, missing values are shown as "-".
func RenderRanking(out io.Writer, records []hltv.RankingRecord) {
	t := NewTable(out)
	t.AppendHeader(table.Row{"#", "Team", "Points", "Players"})
	for _, r := range records {
		t.AppendRow(table.Row{
			formatInt(r.Position),
			formatString(r.Name),
			formatInt(r.Points),
			formatPlayers(r.Players),
		})
	}
	t.Render()
}

func RenderSearch(out io.Writer, result hltv.SearchResult) {
	t := NewTable(out)
	t.AppendHeader(table.Row{"Category", "Result"})
	for _, team := range result.Team {
		t.AppendRow(table.Row{hltv.CategoryTeam, team})
	}
	for _, player := range result.Player {
		t.AppendRow(table.Row{hltv.CategoryPlayer, player})
	}
	for _, event := range result.Event {
		t.AppendRow(table.Row{hltv.CategoryEvent, event})
	}
	for _, article := range result.Article {
		text := article.Title
		if article.Date != "" || article.Author != "" {
			text = fmt.Sprintf("%s (%s, %s)", article.Title, article.Date, article.Author)
		}
		t.AppendRow(table.Row{hltv.CategoryArticle, text})
	}
	t.Render()
}

// WriteJson writes value as json to path, or to out if path is "-".
func WriteJson(out io.Writer, path string, value any) error {
	if path == "-" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	}

	contents, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0644)
}
