package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		panic(err)
	}
}

// the site publishes its rankings on copenhagen time, dates are derived
// from Year()/Month()/Day() so the current time must be in that zone
// before it is turned into a ranking week.
func Now() time.Time {
	return time.Now().In(Location)
}

// Date returns the calendar date of t as seen in Location.
func Date(t time.Time) time.Time {
	t = t.In(Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}
