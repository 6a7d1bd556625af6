package services

import (
	"innovtech/internal/repos"

	"github.com/shopspring/decimal"
)

type AnalyticsService struct {
	Sales *repos.SaleRepo
}

func NewAnalyticsService(sales *repos.SaleRepo) *AnalyticsService {
	return &AnalyticsService{Sales: sales}
}

type Summary struct {
	TotalRevenue      decimal.Decimal    `json:"totalRevenue"`
	TotalOrders       int                `json:"totalOrders"`
	AverageOrderValue decimal.Decimal    `json:"averageOrderValue"`
	UnitsSold         int                `json:"unitsSold"`
	TopProducts       []repos.TopProduct `json:"topProducts"`
}

// Summary aggregates the ventes table for the admin dashboard. Revenue is
// summed with decimal math over current product prices; lines whose product
// was deleted contribute zero revenue but still count as units sold.
func (s *AnalyticsService) Summary() (Summary, error) {
	lines, err := s.Sales.RevenueLines()
	if err != nil {
		return Summary{}, err
	}

	revenue := decimal.Zero
	units := 0
	for _, ln := range lines {
		revenue = revenue.Add(ln.Price.Mul(decimal.NewFromInt(int64(ln.Qty))))
		units += ln.Qty
	}

	orders, err := s.Sales.CountOrders()
	if err != nil {
		return Summary{}, err
	}

	avg := decimal.Zero
	if orders > 0 {
		avg = revenue.DivRound(decimal.NewFromInt(int64(orders)), 2)
	}

	top, err := s.Sales.TopProducts(5)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalRevenue:      revenue,
		TotalOrders:       orders,
		AverageOrderValue: avg,
		UnitsSold:         units,
		TopProducts:       top,
	}, nil
}
