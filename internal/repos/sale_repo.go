package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

type SaleLine struct {
	ProductID int64
	Qty       int
}

// Record persists one vente row per line and decrements each product's stock,
// all inside a single transaction: an unknown product rolls the whole order
// back. Stock is clamped at zero rather than rejecting oversell. Every line
// shares one timestamp, which is what groups the rows into "an order".
// Returns the total recomputed from stored prices.
func (r *SaleRepo) Record(userID int64, lines []SaleLine) (decimal.Decimal, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return decimal.Zero, err
	}
	defer func() { _ = tx.Rollback() }()

	soldAt := time.Now().UTC().Format("2006-01-02 15:04:05")
	total := decimal.Zero

	for _, ln := range lines {
		var price decimal.Decimal
		err := tx.Get(&price, `SELECT prix FROM produits WHERE id_produits=?`, ln.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrNotFound
		}
		if err != nil {
			return decimal.Zero, err
		}

		if _, err := tx.Exec(`INSERT INTO ventes(id_produit,id_user,date_vente,quantite) VALUES(?,?,?,?)`,
			ln.ProductID, userID, soldAt, ln.Qty); err != nil {
			return decimal.Zero, err
		}
		if _, err := tx.Exec(`UPDATE produits SET quantite = MAX(quantite - ?, 0) WHERE id_produits=?`,
			ln.Qty, ln.ProductID); err != nil {
			return decimal.Zero, err
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(ln.Qty))))
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SaleRow is the admin sales listing: line items joined with product and
// customer names. LEFT JOINs keep rows whose product or user was deleted.
type SaleRow struct {
	ID           int64           `db:"id_vente" json:"id"`
	ProductID    int64           `db:"id_produit" json:"productId"`
	ProductName  string          `db:"nom_produit" json:"productName"`
	UserID       int64           `db:"id_user" json:"userId"`
	CustomerName string          `db:"client" json:"customerName"`
	Qty          int             `db:"quantite" json:"quantity"`
	Price        decimal.Decimal `db:"prix" json:"unitPrice"`
	SoldAt       string          `db:"date_vente" json:"soldAt"`
}

func (r *SaleRepo) ListAll() ([]SaleRow, error) {
	out := []SaleRow{}
	err := r.db.Select(&out, `
	  SELECT v.id_vente, v.id_produit, COALESCE(p.nom_produit,'') AS nom_produit,
	         v.id_user, COALESCE(u.prenom || ' ' || u.nom,'') AS client,
	         v.quantite, COALESCE(p.prix,0) AS prix, v.date_vente
	  FROM ventes v
	  LEFT JOIN produits p ON p.id_produits = v.id_produit
	  LEFT JOIN utilisateurs u ON u.id_user = v.id_user
	  ORDER BY v.date_vente DESC, v.id_vente DESC
	`)
	return out, err
}

// RevenueLines feeds the analytics summary; totals are computed in Go with
// decimal math rather than in SQL.
type RevenueLine struct {
	Price decimal.Decimal `db:"prix"`
	Qty   int             `db:"quantite"`
}

func (r *SaleRepo) RevenueLines() ([]RevenueLine, error) {
	out := []RevenueLine{}
	err := r.db.Select(&out, `
	  SELECT COALESCE(p.prix,0) AS prix, v.quantite
	  FROM ventes v
	  LEFT JOIN produits p ON p.id_produits = v.id_produit
	`)
	return out, err
}

// CountOrders counts derived orders: distinct (user, timestamp) groupings.
func (r *SaleRepo) CountOrders() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM (SELECT DISTINCT id_user, date_vente FROM ventes)`)
	return n, err
}

type TopProduct struct {
	ProductID   int64  `db:"id_produit" json:"productId"`
	ProductName string `db:"nom_produit" json:"productName"`
	UnitsSold   int    `db:"units" json:"unitsSold"`
}

func (r *SaleRepo) TopProducts(limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	out := []TopProduct{}
	err := r.db.Select(&out, `
	  SELECT v.id_produit, COALESCE(p.nom_produit,'') AS nom_produit, SUM(v.quantite) AS units
	  FROM ventes v
	  LEFT JOIN produits p ON p.id_produits = v.id_produit
	  GROUP BY v.id_produit
	  ORDER BY units DESC
	  LIMIT ?
	`, limit)
	return out, err
}
