package handlers

import (
	"errors"

	applog "innovtech/internal/log"
	"innovtech/internal/repos"
	"innovtech/internal/services"
	"innovtech/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	Prods     *repos.ProductRepo
	Users     *repos.UserRepo
	Sales     *repos.SaleRepo
	Analytics *services.AnalyticsService
}

// ---------- Products ----------

// GET /api/admin/products — every row, newest first, no stock filtering.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Prods.List()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(products)
}

type productRequest struct {
	CategoryID  int64           `json:"categoryId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

func (req *productRequest) check() (string, bool) {
	name, ok := validate.Name(req.Name)
	if !ok {
		return "name is required", false
	}
	req.Name = name
	if req.Price.IsNegative() {
		return "price must not be negative", false
	}
	if req.Stock < 0 {
		return "stock must not be negative", false
	}
	return "", true
}

// POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if msg, ok := req.check(); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p, err := h.Prods.Create(req.CategoryID, req.Name, req.Price, req.Stock, req.Description, req.ImageURL)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return internalError(c)
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if msg, ok := req.check(); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p, err := h.Prods.Update(id, req.CategoryID, req.Name, req.Price, req.Stock, req.Description, req.ImageURL)
	if errors.Is(err, repos.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return internalError(c)
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/admin/products/:id — unconditional, no referential checks.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	err := h.Prods.Delete(id)
	if errors.Is(err, repos.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return internalError(c)
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Users ----------

// GET /api/admin/users — password hashes excluded at the query level.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(users)
}

type userUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Admin     bool   `json:"admin"`
}

// PUT /api/admin/users/:id — the password field is never part of the update
// set, whatever the request body contains.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	var req userUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "a valid email is required")
	}
	firstName, ok := validate.Name(req.FirstName)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "firstName is required")
	}
	lastName, ok := validate.Name(req.LastName)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "lastName is required")
	}

	u, err := h.Users.Update(id, firstName, lastName, email, req.Admin)
	switch {
	case errors.Is(err, repos.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, repos.ErrEmailTaken):
		return jsonError(c, fiber.StatusConflict, "email already in use")
	case err != nil:
		applog.Error(c, "admin.users.update.fail", err, map[string]any{"user_id": id})
		return internalError(c)
	}
	applog.Audit(c, "admin.users.update", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"user": u})
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	if admin := currentUser(c); admin != nil && admin.ID == id {
		return jsonError(c, fiber.StatusForbidden, "cannot delete your own account")
	}
	err := h.Users.Delete(id)
	if errors.Is(err, repos.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return internalError(c)
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Sales & analytics ----------

// GET /api/admin/sales
func (h *AdminHandler) ListSales(c *fiber.Ctx) error {
	sales, err := h.Sales.ListAll()
	if err != nil {
		applog.Error(c, "admin.sales.list.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(sales)
}

// GET /api/admin/analytics
func (h *AdminHandler) AnalyticsSummary(c *fiber.Ctx) error {
	sum, err := h.Analytics.Summary()
	if err != nil {
		applog.Error(c, "admin.analytics.fail", err, nil)
		return internalError(c)
	}
	return c.JSON(sum)
}
