package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// MatchName reports whether the normalized name contains any of the
// (already normalized) matchers.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var digitsRegex = regexp.MustCompile(`[0-9]+`)

// FirstInt parses the first run of decimal digits in s, ex. "(965 points)" -> 965.
// it returns nil if s contains no digits.
func FirstInt(s string) *int {
	match := digitsRegex.FindString(s)
	if match == "" {
		return nil
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// overflow
		return nil
	}
	return &n
}
