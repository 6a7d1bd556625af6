package domain

type User struct {
	ID        int64  `db:"id_user" json:"id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"prenom" json:"firstName"`
	LastName  string `db:"nom" json:"lastName"`
	Hash      string `db:"mdp" json:"-"`
	Admin     bool   `db:"admin" json:"admin"`
}
