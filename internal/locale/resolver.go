// Package locale maps ISO 4217 currency codes to the supported countries
// whose taxes apply to them.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type Resolver struct {
	regions []language.Region
}

// NewResolver accepts ISO 3166 alpha-2 country codes. Order matters: a currency
// shared by several supported countries resolves to the first one.
func NewResolver(countries []string) (*Resolver, error) {
	r := &Resolver{}
	for _, c := range countries {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		reg, err := language.ParseRegion(c)
		if err != nil {
			return nil, fmt.Errorf("locale: bad country %q: %w", c, err)
		}
		r.regions = append(r.regions, reg)
	}
	if len(r.regions) == 0 {
		return nil, fmt.Errorf("locale: no supported countries")
	}
	return r, nil
}

// Resolve returns the country whose currency is code.
func (r *Resolver) Resolve(code string) (string, bool) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", false
	}
	for _, reg := range r.regions {
		if u, ok := currency.FromRegion(reg); ok && u == unit {
			return reg.String(), true
		}
	}
	return "", false
}
