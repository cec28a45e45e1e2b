package hltv

import (
	"fmt"
	"slices"
)

// ValidateRegion checks a region against the site's allow-list. the empty
// string means "no filter" and is always accepted.
func (s Site) ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if !slices.Contains(s.Regions, region) {
		return fmt.Errorf("%w: '%s'", ErrInvalidRegion, region)
	}
	return nil
}
