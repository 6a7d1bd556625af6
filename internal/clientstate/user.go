package clientstate

import (
	"encoding/json"

	"innovtech/internal/domain"
)

// UserKey is the storage key holding the current user record.
const UserKey = "innovtech_user"

// Kind tags the session state so callers branch on an explicit enum instead
// of probing a nullable blob for an admin flag.
type Kind int

const (
	Anonymous Kind = iota
	Customer
	Admin
)

type UserState struct {
	Kind Kind
	// User is set for Customer and Admin, nil for Anonymous.
	User *domain.User
}

func (s UserState) LoggedIn() bool { return s.Kind != Anonymous }
func (s UserState) IsAdmin() bool  { return s.Kind == Admin }

// Session wraps the stored current-user record. Logout is a pure client-side
// clear; server session invalidation is a separate API call.
type Session struct {
	store Storage
}

func NewSession(s Storage) *Session { return &Session{store: s} }

func (s *Session) Current() UserState {
	raw, ok := s.store.Get(UserKey)
	if !ok || raw == "" {
		return UserState{Kind: Anonymous}
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return UserState{Kind: Anonymous}
	}
	kind := Customer
	if u.Admin {
		kind = Admin
	}
	return UserState{Kind: kind, User: &u}
}

func (s *Session) SetUser(u domain.User) {
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	s.store.Set(UserKey, string(b))
}

func (s *Session) Clear() {
	s.store.Delete(UserKey)
}
