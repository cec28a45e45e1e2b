package hltv

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int {
	return &n
}

func strp(s string) *string {
	return &s
}

func strps(values ...string) []*string {
	out := make([]*string, len(values))
	for i, v := range values {
		out[i] = strp(v)
	}
	return out
}

func readTestdata(t testing.TB, name string) string {
	contents, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(contents)
}

func TestParseRankingPage(t *testing.T) {
	records, err := ParseRankingPage(readTestdata(t, "ranking.html"))
	require.NoError(t, err)

	expected := []RankingRecord{
		{
			Position: intp(1),
			Name:     strp("Natus Vincere"),
			Points:   intp(965),
			Players:  strps("s1mple", "electroNic", "Boombl4", "Perfecto", "b1t"),
		},
		{
			Position: intp(2),
			Name:     strp("Gambit"),
			Points:   intp(872),
			Players:  strps("Ax1Le", "Hobbit", "interz", "sh1ro", "nafany"),
		},
		{
			Position: intp(3),
			Name:     strp("Team Vitality"),
			Points:   intp(651),
			Players:  strps("ZywOo", "shox", "apEX", "misutaaa", "Kyojin"),
		},
		{
			Position: intp(11),
			Name:     strp("MOUZ"),
			Points:   intp(246),
			Players:  strps("dexter", "frozen", "acoR", "ropz", "Bymas"),
		},
	}

	diff := cmp.Diff(expected, records)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParseRankingRecord(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected RankingRecord
	}{
		{
			name:     "empty position marker",
			fragment: `<div class='ranking-header'><span class='position'></span></div>`,
			expected: RankingRecord{Players: []*string{}},
		},
		{
			name:     "marker only",
			fragment: `<div class="ranking-header"></div>`,
			expected: RankingRecord{Players: []*string{}},
		},
		{
			name: "blank player is kept as nil",
			fragment: `
			<div class="ranking-header">
				<span class="position">#7</span>
				<div class="relative">
					<div class="teamLine"><span class="name"> FaZe  Clan </span><span class="points">(412 points)</span></div>
					<div class="playersLine">
						<div class="rankingNicknames"><span>rain</span></div>
						<div class="rankingNicknames"><span>   </span></div>
						<div class="rankingNicknames"><span>karrigan</span></div>
					</div>
				</div>
			</div>`,
			expected: RankingRecord{
				Position: intp(7),
				Name:     strp("FaZe Clan"),
				Points:   intp(412),
				Players:  []*string{strp("rain"), nil, strp("karrigan")},
			},
		},
		{
			name: "missing points and roster",
			fragment: `
			<div class="ranking-header">
				<span class="position">#30</span>
				<div class="relative"><div class="teamLine"><span class="name">Apeks</span></div></div>
			</div>`,
			expected: RankingRecord{
				Position: intp(30),
				Name:     strp("Apeks"),
				Players:  []*string{},
			},
		},
		{
			name: "marker nested inside the fragment",
			fragment: `
			<section><div class="wrapper">
				<div class="ranking-header">
					<span class="position">#4</span>
					<div class="relative"><div class="teamLine"><span class="name">G2</span><span class="points">(500 points)</span></div></div>
				</div>
			</div></section>`,
			expected: RankingRecord{
				Position: intp(4),
				Name:     strp("G2"),
				Points:   intp(500),
				Players:  []*string{},
			},
		},
		{
			name: "name outside of div.relative is ignored",
			fragment: `
			<div class="ranking-header">
				<div class="teamLine"><span class="name">Ghost</span></div>
			</div>`,
			expected: RankingRecord{Players: []*string{}},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			record, err := ParseRankingRecord(test.fragment)
			require.NoError(t, err)

			diff := cmp.Diff(test.expected, record)
			if diff != "" {
				t.Fatal(diff)
			}
			require.NotNil(t, record.Players)
		})
	}
}

func TestParseRankingRecordMalformed(t *testing.T) {
	for _, fragment := range []string{
		`<div class="customClass"></div>`,
		``,
		`<span class="position">#1</span>`,
		`<div class="ranking-headers"></div>`,
	} {
		_, err := ParseRankingRecord(fragment)
		require.ErrorIs(t, err, ErrMalformedFragment, fragment)
	}
}

func TestParseRankingPageEmpty(t *testing.T) {
	for _, page := range []string{
		``,
		`<html><body><p>no ranking this week</p></body></html>`,
	} {
		records, err := ParseRankingPage(page)
		require.NoError(t, err)
		require.NotNil(t, records)
		require.Empty(t, records)
	}
}

func TestParseRankingPageSkipsNestedMarkers(t *testing.T) {
	page := `
	<div class="ranking-header">
		<span class="position">#1</span>
		<div class="relative"><div class="teamLine"><span class="name">Outer</span></div></div>
		<div class="ranking-header"><span class="position">#99</span></div>
	</div>
	<div class="ranking-header"><span class="position">#2</span></div>`

	records, err := ParseRankingPage(page)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, *records[0].Position)
	require.Equal(t, "Outer", *records[0].Name)
	require.Equal(t, 2, *records[1].Position)
	require.Nil(t, records[1].Name)
}

func TestParseRankingPageNonUtf8(t *testing.T) {
	page := "<html><head><meta charset=\"iso-8859-1\"></head><body>" +
		"<div class=\"ranking-header\"><span class=\"position\">#5</span>" +
		"<div class=\"relative\"><div class=\"teamLine\"><span class=\"name\">Heroic</span></div>" +
		"<div class=\"playersLine\"><div class=\"rankingNicknames\"><span>st\xf8ve</span></div></div>" +
		"</div></div></body></html>"

	doc, err := ParseDocument(strings.NewReader(page), "text/html")
	require.NoError(t, err)

	records := ExtractRankingPage(doc)
	require.Len(t, records, 1)
	require.Equal(t, "støve", *records[0].Players[0])
}

func TestParseDocumentEmpty(t *testing.T) {
	for _, contentType := range []string{"", "text/html", "text/html; charset=utf-8"} {
		doc, err := ParseDocument(strings.NewReader(""), contentType)
		require.NoError(t, err, contentType)
		require.Empty(t, ExtractRankingPage(doc))
	}
}

func TestParseRankingRecordNbsp(t *testing.T) {
	record, err := ParseRankingRecord(`<div class="ranking-header">
		<span class="position">#3</span>
		<div class="relative">
			<div class="teamLine"><span class="name">Team&nbsp;&nbsp;Spirit</span><span class="points">(812&nbsp;points)</span></div>
			<div class="playersLine"><div class="rankingNicknames"><span>&nbsp;</span></div></div>
		</div>
	</div>`)
	require.NoError(t, err)
	require.Equal(t, "Team Spirit", *record.Name)
	require.Equal(t, 812, *record.Points)
	require.Equal(t, []*string{nil}, record.Players)
}

func FuzzParseRankingRecord(f *testing.F) {
	f.Add(`<div class='ranking-header'><span class='position'></span></div>`)
	f.Add(`<div class="customClass"></div>`)
	f.Add(``)
	f.Add(readTestdata(f, "ranking.html"))

	f.Fuzz(func(t *testing.T, fragment string) {
		record, err := ParseRankingRecord(fragment)
		if err != nil {
			require.ErrorIs(t, err, ErrMalformedFragment)
			return
		}
		require.NotNil(t, record.Players)
		if record.Name != nil {
			require.NotEmpty(t, *record.Name)
		}
		for _, p := range record.Players {
			if p != nil {
				require.NotEmpty(t, *p)
			}
		}
	})
}
