package hltv

import "slices"

const DefaultBaseUrl = "https://www.hltv.org"

// DefaultRegions are the region names accepted by the ranking filter on the site.
var DefaultRegions = []string{
	"Argentina",
	"Australia",
	"Belgium",
	"Brazil",
	"Bulgaria",
	"Canada",
	"Chile",
	"China",
	"Czech Republic",
	"Denmark",
	"Finland",
	"France",
	"Germany",
	"Kazakhstan",
	"Mongolia",
	"Poland",
	"Portugal",
	"Russia",
	"Spain",
	"Sweden",
	"Turkey",
	"Ukraine",
	"United States",
}

// Site describes the layout of the site being scraped. It is passed by value
// and never mutated, tests can swap in their own base url or allow-list.
type Site struct {
	BaseUrl string   `json:"base_url"`
	Regions []string `json:"regions"`
}

func DefaultSite() Site {
	return Site{
		BaseUrl: DefaultBaseUrl,
		Regions: slices.Clone(DefaultRegions),
	}
}
