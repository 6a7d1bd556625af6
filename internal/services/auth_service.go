package services

import (
	"errors"

	"innovtech/internal/domain"
	"innovtech/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCreds is returned for both unknown email and wrong password so the
// two cases stay indistinguishable to callers.
var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
	// bcrypt work factor for new accounts
	Cost int
}

func NewAuthService(users *repos.UserRepo, cost int) *AuthService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{Users: users, Cost: cost}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Signup creates a customer account. Duplicate emails surface as
// repos.ErrEmailTaken; the plaintext password is hashed before it ever
// reaches the repository.
func (s *AuthService) Signup(email, password, firstName, lastName string) (*domain.User, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return nil, err
	}
	return s.Users.Create(email, string(h), firstName, lastName)
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
