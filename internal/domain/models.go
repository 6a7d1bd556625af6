package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices serialize as JSON numbers, matching the public API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID   int64  `db:"id_categorie" json:"id"`
	Name string `db:"nom_categorie" json:"name"`
}

type Product struct {
	ID          int64           `db:"id_produits" json:"id"`
	CategoryID  int64           `db:"id_categorie" json:"categoryId"`
	Name        string          `db:"nom_produit" json:"name"`
	Price       decimal.Decimal `db:"prix" json:"price"`
	Stock       int             `db:"quantite" json:"stock"`
	Description string          `db:"description" json:"description"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	// Resolved via LEFT JOIN; empty when the category reference is dangling.
	CategoryName string `db:"nom_categorie" json:"categoryName,omitempty"`
}

// Sale is one persisted line item: a quantity of one product sold to one
// user at one time. Rows sharing (UserID, SoldAt) approximate "one order";
// there is no order header entity.
type Sale struct {
	ID        int64  `db:"id_vente" json:"id"`
	ProductID int64  `db:"id_produit" json:"productId"`
	UserID    int64  `db:"id_user" json:"userId"`
	SoldAt    string `db:"date_vente" json:"soldAt"`
	Qty       int    `db:"quantite" json:"quantity"`
}
