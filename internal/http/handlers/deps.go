package handlers

import (
	"github.com/jmoiron/sqlx"

	"storecart/internal/config"
	"storecart/internal/repos"
	"storecart/internal/services"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	TaxHandler      *TaxHandler
	Admin           *services.AdminAuth
}

func NewDeps(db *sqlx.DB, cfg config.Config, currency services.CurrencyResolver) *Deps {
	store := repos.NewStore(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	taxRepo := repos.NewTaxRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo, store)
	cartSvc := services.NewCartService(services.NewSQLUnitOfWork(store), currency)
	taxSvc := services.NewTaxService(currency, taxRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		TaxHandler:      &TaxHandler{Taxes: taxSvc},
		Admin:           services.NewAdminAuth(cfg.AdminTokenHash),
	}
}
