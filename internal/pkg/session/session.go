package session

import (
	"github.com/gorilla/sessions"

	"github.com/campushq/discipline/internal/app/models"
)

// UserID extracts the bound account id from a session.
func UserID(s *sessions.Session) (int64, bool) {
	id, ok := s.Values[KeyUserID].(int64)
	return id, ok && id > 0
}

// Role extracts the bound role from a session.
func Role(s *sessions.Session) (models.RoleType, bool) {
	r, ok := s.Values[KeyRole].(string)
	if !ok || r == "" {
		return "", false
	}
	return models.RoleType(r), true
}

// Bind attaches an authenticated account to the session.
func Bind(s *sessions.Session, userID int64, role models.RoleType) {
	s.Values[KeyUserID] = userID
	s.Values[KeyRole] = string(role)
}
