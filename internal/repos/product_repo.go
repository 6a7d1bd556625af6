package repos

import (
	"database/sql"
	"errors"

	"innovtech/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the whole catalog with category names resolved. The LEFT JOIN
// keeps products whose category reference no longer resolves; zero-stock rows
// are included (the storefront shows them as out of stock). No pagination:
// the catalog is assumed small enough to return unbounded.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT p.id_produits, p.id_categorie, p.nom_produit, p.prix, p.quantite,
	         p.description, p.image_url, COALESCE(c.nom_categorie,'') AS nom_categorie
	  FROM produits p
	  LEFT JOIN categorie c ON c.id_categorie = p.id_categorie
	  ORDER BY p.id_produits DESC
	`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT p.id_produits, p.id_categorie, p.nom_produit, p.prix, p.quantite,
	         p.description, p.image_url, COALESCE(c.nom_categorie,'') AS nom_categorie
	  FROM produits p
	  LEFT JOIN categorie c ON c.id_categorie = p.id_categorie
	  WHERE p.id_produits = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(categoryID int64, name string, price decimal.Decimal, stock int, description, imageURL string) (domain.Product, error) {
	res, err := r.db.Exec(`
	  INSERT INTO produits(id_categorie,nom_produit,prix,quantite,description,image_url)
	  VALUES(?,?,?,?,?,?)
	`, categoryID, name, price, stock, description, imageURL)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

func (r *ProductRepo) Update(id, categoryID int64, name string, price decimal.Decimal, stock int, description, imageURL string) (domain.Product, error) {
	res, err := r.db.Exec(`
	  UPDATE produits
	  SET id_categorie=?, nom_produit=?, prix=?, quantite=?, description=?, image_url=?
	  WHERE id_produits=?
	`, categoryID, name, price, stock, description, imageURL, id)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, ErrNotFound
	}
	return r.Get(id)
}

// Delete is unconditional; sales rows referencing the product stay behind.
func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM produits WHERE id_produits=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
