package handlers

import (
	"errors"

	applog "innovtech/internal/log"
	"innovtech/internal/repos"
	"innovtech/internal/services"
	"innovtech/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/produits — public catalog, unbounded, zero-stock rows included.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(products)
}

// GET /api/produits/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, repos.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "catalog.get.fail", err, map[string]any{"product_id": id})
		return internalError(c)
	}
	return c.JSON(p)
}

// GET /api/categories
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "catalog.categories.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(cats)
}
