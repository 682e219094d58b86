package repos

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"storecart/internal/domain"
)

type TaxRepo struct{ db sqlx.ExtContext }

func NewTaxRepo(db sqlx.ExtContext) *TaxRepo { return &TaxRepo{db: db} }

// FindByRegionAndCountry returns taxes in registration order. No match yields
// an empty slice.
func (r *TaxRepo) FindByRegionAndCountry(ctx context.Context, region, country string) ([]domain.TaxRecord, error) {
	out := []domain.TaxRecord{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT id, country_code, region, percentage, tax_type, name
		FROM tax_info
		WHERE region = ? AND country_code = ?
		ORDER BY id
	`, region, country)
	if err != nil {
		return nil, fmt.Errorf("find taxes %s/%s: %w", country, region, err)
	}
	for _, t := range out {
		if !t.Kind.Valid() {
			return nil, fmt.Errorf("tax %d: unknown tax type %q", t.ID, t.Kind)
		}
	}
	return out, nil
}
