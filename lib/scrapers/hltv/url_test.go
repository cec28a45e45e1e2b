package hltv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRankingUrl(t *testing.T) {
	site := DefaultSite()

	testCases := []struct {
		req    RankingRequest
		expect string
	}{
		{
			req:    RankingRequest{},
			expect: "https://www.hltv.org/ranking/teams/",
		},
		{
			req:    RankingRequest{Url: "https://www.hltv.org/ranking/teams/2021/july/19"},
			expect: "https://www.hltv.org/ranking/teams/2021/july/19",
		},
		{
			// a raw url bypasses validation entirely
			req:    RankingRequest{Url: "http://localhost/x", Date: "garbage", Region: "Atlantis"},
			expect: "http://localhost/x",
		},
		{
			req:    RankingRequest{Date: "2021-07-19"},
			expect: "https://www.hltv.org/ranking/teams/2021/july/19",
		},
		{
			req:    RankingRequest{Date: "2021-07-22", Region: "Denmark"},
			expect: "https://www.hltv.org/ranking/teams/2021/july/19",
		},
	}

	for _, test := range testCases {
		link, err := site.RankingUrl(test.req)
		require.NoError(t, err)
		require.Equal(t, test.expect, link)
	}
}

func TestRankingUrlErrors(t *testing.T) {
	site := DefaultSite()

	_, err := site.RankingUrl(RankingRequest{Date: "19/07/2021"})
	require.ErrorIs(t, err, ErrInvalidDateFormat)

	// region is validated even though it is not part of the url
	_, err = site.RankingUrl(RankingRequest{Date: "2021-07-19", Region: "brazil"})
	require.ErrorIs(t, err, ErrInvalidRegion)

	_, err = site.RankingUrl(RankingRequest{Region: "Atlantis"})
	require.ErrorIs(t, err, ErrInvalidRegion)

	// a valid region still needs a date
	_, err = site.RankingUrl(RankingRequest{Region: "Brazil"})
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestRankingUrlRegionDoesNotChangeUrl(t *testing.T) {
	site := DefaultSite()

	// 2023-01-02 is a monday
	withRegion, err := site.RankingUrl(RankingRequest{Date: "2023-01-02", Region: "Brazil"})
	require.NoError(t, err)

	literal, err := site.RankingUrl(RankingRequest{Url: site.BaseUrl + "/ranking/teams/2023/january/02"})
	require.NoError(t, err)

	require.Equal(t, literal, withRegion)

	typed, err := site.RankingUrl(RankingRequestFor(time.Date(2023, time.January, 2, 12, 0, 0, 0, time.UTC), "Brazil"))
	require.NoError(t, err)
	require.Equal(t, literal, typed)
}

func TestRankingUrlCustomBase(t *testing.T) {
	site := Site{BaseUrl: "http://127.0.0.1:8080/", Regions: DefaultRegions}

	link, err := site.RankingUrl(RankingRequest{})
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080/ranking/teams/", link)

	link, err = site.RankingUrl(RankingRequest{Date: "2021-07-19"})
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080/ranking/teams/2021/july/19", link)
}

func TestSearchUrl(t *testing.T) {
	site := DefaultSite()
	require.Equal(t, "https://www.hltv.org/search?query=MIBR", site.SearchUrl("MIBR"))
	require.Equal(t, "https://www.hltv.org/search?query=Official%3A+roster", site.SearchUrl("Official: roster"))
	require.Equal(t, "https://www.hltv.org/search?query=", site.SearchUrl(""))
}
