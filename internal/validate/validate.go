package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Province/state abbreviation, e.g. ON, BC.
	reRegion   = regexp.MustCompile(`^[A-Z]{2}$`)
	reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Region normalises a province/state code to upper case.
func Region(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reRegion.MatchString(s)
}

// Currency normalises an ISO 4217 code to upper case. It checks shape only;
// whether the currency is supported is decided by the tax lookup.
func Currency(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reCurrency.MatchString(s)
}

// ID parses a positive numeric resource identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
