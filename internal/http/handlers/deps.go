package handlers

import (
	"innovtech/internal/config"
	"innovtech/internal/repos"
	"innovtech/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth    *services.AuthService
	AuthH   *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
	Admin   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.BcryptCost)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	orderSvc := services.NewOrderService(saleRepo)
	analyticsSvc := services.NewAnalyticsService(saleRepo)

	return &Deps{
		Auth:    authSvc,
		AuthH:   &AuthHandler{Auth: authSvc},
		Product: &ProductHandler{Catalog: catalogSvc},
		Order:   &OrderHandler{Orders: orderSvc},
		Admin:   &AdminHandler{Prods: prodRepo, Users: userRepo, Sales: saleRepo, Analytics: analyticsSvc},
	}
}
