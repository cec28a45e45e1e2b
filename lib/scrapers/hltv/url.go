package hltv

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// RankingRequest selects a ranking page. Url takes precedence over everything
// else, otherwise Date (YYYY-MM-DD) and Region are used.
type RankingRequest struct {
	Url    string
	Date   string
	Region string
}

func RankingRequestFor(date time.Time, region string) RankingRequest {
	return RankingRequest{
		Date:   date.Format(dateLayout),
		Region: region,
	}
}

func (s Site) base() string {
	return strings.TrimSuffix(s.BaseUrl, "/")
}

// RankingUrl builds the url of the ranking page described by req.
//
// the region is validated but is not part of the url, the dated ranking
// route on the site is only scoped by year/month/day.
func (s Site) RankingUrl(req RankingRequest) (string, error) {
	if req.Url != "" {
		return req.Url, nil
	}

	err := s.ValidateRegion(req.Region)
	if err != nil {
		return "", err
	}

	if req.Date == "" {
		if req.Region != "" {
			return "", fmt.Errorf("%w: a date is required when filtering by region", ErrInvalidDateFormat)
		}
		return s.base() + "/ranking/teams/", nil
	}

	date, err := ParseRankingDate(req.Date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/ranking/teams/%s", s.base(), date.Path()), nil
}

func (s Site) SearchUrl(query string) string {
	values := url.Values{}
	values.Set("query", query)
	return fmt.Sprintf("%s/search?%s", s.base(), values.Encode())
}
