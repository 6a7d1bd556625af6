package services

import (
	"errors"

	"innovtech/internal/repos"
	"innovtech/internal/validate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder = errors.New("order has no items")
	ErrBadQty     = errors.New("invalid quantity")
)

// OrderLine is one cart line as submitted by the client at checkout. The
// client-claimed unit price is carried only so the server can log total
// mismatches; it is never used for money math.
type OrderLine struct {
	ProductID int64
	Qty       int
	Price     decimal.Decimal
}

type OrderService struct {
	Sales *repos.SaleRepo
}

func NewOrderService(sales *repos.SaleRepo) *OrderService {
	return &OrderService{Sales: sales}
}

// Place records one vente row per line in a single transaction, decrementing
// stock clamped at zero. The returned reference is generated server-side and
// is not persisted: there is no order-header entity, an order is the derived
// grouping of sale rows by (user, timestamp).
func (s *OrderService) Place(userID int64, lines []OrderLine) (ref string, serverTotal, clientTotal decimal.Decimal, err error) {
	if len(lines) == 0 {
		return "", decimal.Zero, decimal.Zero, ErrEmptyOrder
	}

	saleLines := make([]repos.SaleLine, 0, len(lines))
	clientTotal = decimal.Zero
	for _, ln := range lines {
		qty, ok := validate.Qty(ln.Qty)
		if !ok {
			return "", decimal.Zero, decimal.Zero, ErrBadQty
		}
		saleLines = append(saleLines, repos.SaleLine{ProductID: ln.ProductID, Qty: qty})
		clientTotal = clientTotal.Add(ln.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	serverTotal, err = s.Sales.Record(userID, saleLines)
	if err != nil {
		return "", decimal.Zero, decimal.Zero, err
	}

	return uuid.NewString(), serverTotal, clientTotal, nil
}
