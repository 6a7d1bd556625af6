package repos

import (
	"database/sql"
	"errors"

	"innovtech/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id_user,email,mdp,prenom,nom,admin FROM utilisateurs WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id_user,email,mdp,prenom,nom,admin FROM utilisateurs WHERE id_user=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every account; the password hash is excluded at the query
// level so it can never leak through serialization.
func (r *UserRepo) List() ([]domain.User, error) {
	out := []domain.User{}
	err := r.DB.Select(&out, `SELECT id_user,email,prenom,nom,admin FROM utilisateurs ORDER BY id_user`)
	return out, err
}

// Create inserts a new customer account and returns it. The password must
// arrive already hashed; duplicate emails surface as ErrEmailTaken.
func (r *UserRepo) Create(email, hash, firstName, lastName string) (*domain.User, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM utilisateurs WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrEmailTaken
	}

	res, err := r.DB.Exec(`INSERT INTO utilisateurs(email,mdp,prenom,nom,admin) VALUES(?,?,?,?,0)`,
		email, hash, firstName, lastName)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Email: email, FirstName: firstName, LastName: lastName}, nil
}

// Update rewrites the mutable profile fields. The statement never touches
// mdp, so a crafted request body cannot overwrite a stored password.
func (r *UserRepo) Update(id int64, firstName, lastName, email string, admin bool) (*domain.User, error) {
	adminFlag := 0
	if admin {
		adminFlag = 1
	}
	res, err := r.DB.Exec(`UPDATE utilisateurs SET prenom=?, nom=?, email=?, admin=? WHERE id_user=?`,
		firstName, lastName, email, adminFlag, id)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return &domain.User{ID: id, Email: email, FirstName: firstName, LastName: lastName, Admin: admin}, nil
}

// Delete is unconditional: sales referencing the user are left dangling.
func (r *UserRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM utilisateurs WHERE id_user=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	_, _ = r.DB.Exec(`UPDATE sessions SET user_id=NULL WHERE user_id=?`, id)
	return nil
}

func (r *UserRepo) BindSession(sid string, userID int64) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id_user,u.email,u.mdp,u.prenom,u.nom,u.admin
      FROM sessions s
      JOIN utilisateurs u ON u.id_user=s.user_id
      WHERE s.id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
