package services_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"innovtech/internal/repos"
	"innovtech/internal/services"
)

func TestAnalyticsSummary(t *testing.T) {
	db := memdb(t)

	// Two derived orders: user 1 bought twice at distinct timestamps,
	// user 2 once sharing a timestamp across two lines.
	db.MustExec(`INSERT INTO ventes(id_produit,id_user,date_vente,quantite) VALUES
	  (1,1,'2026-01-10 10:00:00',2),
	  (2,1,'2026-01-11 09:30:00',1),
	  (1,2,'2026-01-11 09:30:00',1),
	  (2,2,'2026-01-11 09:30:00',3)`)

	svc := services.NewAnalyticsService(repos.NewSaleRepo(db))
	sum, err := svc.Summary()
	if err != nil {
		t.Fatal(err)
	}

	// 3*89.50 + 4*109.00 = 704.50
	if want := decimal.RequireFromString("704.50"); !sum.TotalRevenue.Equal(want) {
		t.Fatalf("want revenue %s, got %s", want, sum.TotalRevenue)
	}
	if sum.TotalOrders != 3 {
		t.Fatalf("want 3 derived orders, got %d", sum.TotalOrders)
	}
	if sum.UnitsSold != 7 {
		t.Fatalf("want 7 units, got %d", sum.UnitsSold)
	}
	if want := decimal.RequireFromString("234.83"); !sum.AverageOrderValue.Equal(want) {
		t.Fatalf("want avg %s, got %s", want, sum.AverageOrderValue)
	}
	if len(sum.TopProducts) != 2 {
		t.Fatalf("want 2 top products, got %d", len(sum.TopProducts))
	}
	if sum.TopProducts[0].ProductID != 2 || sum.TopProducts[0].UnitsSold != 4 {
		t.Fatalf("bad leader: %+v", sum.TopProducts[0])
	}
}

func TestAnalyticsCountsDeletedProductsAsUnits(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO ventes(id_produit,id_user,date_vente,quantite) VALUES
	  (999,1,'2026-01-10 10:00:00',2)`)

	svc := services.NewAnalyticsService(repos.NewSaleRepo(db))
	sum, err := svc.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.UnitsSold != 2 {
		t.Fatalf("dangling sale must still count units, got %d", sum.UnitsSold)
	}
	if !sum.TotalRevenue.IsZero() {
		t.Fatalf("deleted product contributes zero revenue, got %s", sum.TotalRevenue)
	}
}
