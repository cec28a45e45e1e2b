package hltv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSearchResults(t *testing.T) {
	result, err := ParseSearchResults(readTestdata(t, "search.html"))
	require.NoError(t, err)

	expected := SearchResult{
		Team:   []string{"MIBR", "MIBR Academy"},
		Player: []string{"Gabriel 'FalleN' Toledo"},
		Article: []Article{
			{
				Title:  "MIBR announce new roster",
				Date:   "12/01/2023",
				Author: "Nicholas 'tNick' Taylor",
			},
			{Title: "Official: MIBR part ways with coach"},
		},
	}

	diff := cmp.Diff(expected, result)
	if diff != "" {
		t.Fatal(diff)
	}
	require.Nil(t, result.Event)
	require.Equal(t, 5, result.Count())
	require.False(t, result.Empty())
}

func TestParseSearchResultsSingleCategory(t *testing.T) {
	html := `
	<table><tbody>
		<tr><td>Article</td></tr>
		<tr><td>Recap: IEM Cologne</td><td>2021-07-19</td><td>Striker</td></tr>
	</tbody></table>`

	result, err := ParseSearchResults(html)
	require.NoError(t, err)

	diff := cmp.Diff(SearchResult{
		Article: []Article{{Title: "Recap: IEM Cologne", Date: "2021-07-19", Author: "Striker"}},
	}, result)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParseSearchResultsEmpty(t *testing.T) {
	for _, html := range []string{
		``,
		`<html><body><p>No results</p></body></html>`,
		`<table><tbody></tbody></table>`,
		// header rows without any entries
		`<table><tbody><tr><td>Team</td></tr></tbody></table>`,
	} {
		result, err := ParseSearchResults(html)
		require.NoError(t, err)
		require.True(t, result.Empty(), html)
		require.Equal(t, 0, result.Count())
	}
}

func TestParseSearchResultsUnknownCategory(t *testing.T) {
	html := `
	<table><tbody>
		<tr><td>Forum</td></tr>
		<tr><td>some thread</td></tr>
	</tbody></table>
	<table><tbody>
		<tr><td>team</td></tr>
		<tr><td>Astralis</td></tr>
	</tbody></table>`

	result, err := ParseSearchResults(html)
	require.NoError(t, err)

	diff := cmp.Diff(SearchResult{Team: []string{"Astralis"}}, result)
	if diff != "" {
		t.Fatal(diff)
	}
}
