package handlers

import (
	"errors"

	applog "innovtech/internal/log"
	"innovtech/internal/repos"
	"innovtech/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type orderItem struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderRequest struct {
	Items []orderItem `json:"items"`
}

// POST /api/orders — checkout. Requires a logged-in user; the cart itself
// lives client-side until this call submits it.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return jsonError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: it.ProductID, Qty: it.Quantity, Price: it.Price})
	}

	ref, serverTotal, clientTotal, err := h.Orders.Place(u.ID, lines)
	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		return jsonError(c, fiber.StatusBadRequest, "items are required")
	case errors.Is(err, services.ErrBadQty):
		return jsonError(c, fiber.StatusBadRequest, "quantity must be at least 1")
	case errors.Is(err, repos.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "product not found")
	case err != nil:
		applog.Error(c, "order.place.fail", err, map[string]any{"user_id": u.ID})
		return internalError(c)
	}

	applog.Audit(c, "order.place", map[string]any{
		"user_id":      u.ID,
		"reference":    ref,
		"server_total": serverTotal.String(),
		"client_total": clientTotal.String(),
		"mismatch":     !serverTotal.Equal(clientTotal),
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reference": ref,
		"total":     serverTotal,
		"lines":     len(req.Items),
	})
}
