package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentPrice returns the price of p in currency that is effective at asOf.
// A record matches when EffectiveFrom <= asOf <= EffectiveUntil.
//
// Windows for one product and currency are not supposed to overlap. When
// they do, the first matching record in p.Prices wins.
func CurrentPrice(p Product, currency string, asOf time.Time) (decimal.Decimal, bool) {
	for _, pr := range p.Prices {
		if pr.CurrencyCode != currency {
			continue
		}
		if pr.EffectiveFrom.After(asOf) || pr.EffectiveUntil.Before(asOf) {
			continue
		}
		return pr.Price, true
	}
	return decimal.Zero, false
}
