package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog if the DB is empty, then make sure the demo
	// accounts exist (both idempotent; safe to run every start).
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	// Column and table names follow the production MySQL schema this service
	// replaced, so existing dumps import unchanged. Sales rows deliberately
	// carry no foreign keys: product/user deletes are unconditional and may
	// leave dangling references behind.
	schema := `
CREATE TABLE IF NOT EXISTS categorie(
  id_categorie INTEGER PRIMARY KEY AUTOINCREMENT,
  nom_categorie TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS produits(
  id_produits INTEGER PRIMARY KEY AUTOINCREMENT,
  id_categorie INTEGER NOT NULL DEFAULT 0,
  nom_produit TEXT NOT NULL,
  prix NUMERIC NOT NULL CHECK (prix >= 0),
  quantite INTEGER NOT NULL DEFAULT 0 CHECK (quantite >= 0),
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_produits_categorie ON produits(id_categorie);

CREATE TABLE IF NOT EXISTS utilisateurs(
  id_user INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  mdp TEXT NOT NULL,
  prenom TEXT NOT NULL,
  nom TEXT NOT NULL,
  admin INTEGER NOT NULL DEFAULT 0 CHECK (admin IN (0,1))
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_utilisateurs_email ON utilisateurs(LOWER(email));

CREATE TABLE IF NOT EXISTS ventes(
  id_vente INTEGER PRIMARY KEY AUTOINCREMENT,
  id_produit INTEGER NOT NULL,
  id_user INTEGER NOT NULL,
  date_vente TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  quantite INTEGER NOT NULL CHECK (quantite >= 1)
);
CREATE INDEX IF NOT EXISTS idx_ventes_user_date ON ventes(id_user, date_vente);
CREATE INDEX IF NOT EXISTS idx_ventes_produit   ON ventes(id_produit);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id INTEGER NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categorie`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categorie(id_categorie,nom_categorie) VALUES
	  (1,'Ordinateurs'),
	  (2,'Peripheriques'),
	  (3,'Composants')`)

	tx.MustExec(`INSERT INTO produits(id_categorie,nom_produit,prix,quantite,description,image_url) VALUES
	  (1,'Laptop Pro 14',1299.99,12,'14-inch ultrabook, 16GB RAM','/images/laptop-pro-14.jpg'),
	  (2,'Clavier mecanique',89.50,40,'Hot-swappable mechanical keyboard','/images/clavier-meca.jpg'),
	  (2,'Souris sans fil',34.90,0,'Wireless mouse, currently restocking','/images/souris.jpg'),
	  (3,'SSD NVMe 1To',109.00,25,'PCIe 4.0 NVMe drive','/images/ssd-1to.jpg')`)

	return tx.Commit()
}

// seedUsers ensures one admin and one customer account exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		Email, FirstName, LastName, Raw string
		Admin                           int
	}
	users := []u{
		{Email: "admin@innovtech.test", FirstName: "Ines", LastName: "Admin", Raw: "Passw0rd!", Admin: 1},
		{Email: "client@innovtech.test", FirstName: "Camille", LastName: "Client", Raw: "Passw0rd!", Admin: 0},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		var n int
		if err := tx.Get(&n, `SELECT COUNT(*) FROM utilisateurs WHERE LOWER(email)=LOWER(?)`, x.Email); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		h, err := bcrypt.GenerateFromPassword([]byte(x.Raw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO utilisateurs(email,mdp,prenom,nom,admin) VALUES(?,?,?,?,?)`,
			x.Email, string(h), x.FirstName, x.LastName, x.Admin); err != nil {
			return err
		}
	}

	return tx.Commit()
}
