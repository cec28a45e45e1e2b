package hltv

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// RankingDate is the monday a ranking was published on, rendered the way
// the site expects it in its url path.
type RankingDate struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`

	monday time.Time
}

// MondayOf walks back one day at a time until it lands on a monday.
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

func ResolveRankingDate(t time.Time) RankingDate {
	monday := MondayOf(t)
	return RankingDate{
		Year:   fmt.Sprintf("%04d", monday.Year()),
		Month:  strings.ToLower(monday.Month().String()),
		Day:    fmt.Sprintf("%02d", monday.Day()),
		monday: monday,
	}
}

func ParseRankingDate(s string) (RankingDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return RankingDate{}, fmt.Errorf("%w: '%s'", ErrInvalidDateFormat, s)
	}
	return ResolveRankingDate(t), nil
}

// Path renders the date as url path segments, ex. 2021/july/19.
func (d RankingDate) Path() string {
	return fmt.Sprintf("%s/%s/%s", d.Year, d.Month, d.Day)
}

func (d RankingDate) Time() time.Time {
	return d.monday
}

func (d RankingDate) String() string {
	return d.monday.Format(dateLayout)
}
