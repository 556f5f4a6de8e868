// Package session provides the server-side session layer: a
// gorilla/sessions Store whose records live in the 'sessions' table.
// The browser cookie carries only the securecookie-signed session id,
// so the authoritative binding of request to account and role stays on
// the server.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/logger"
)

// CookieName is the session cookie used by both roles.
const CookieName = "dc_session"

// Session value keys.
const (
	KeyUserID = "userID"
	KeyRole   = "role"
)

// PGStore implements sessions.Store on top of a pgx pool.
type PGStore struct {
	db      *pgxpool.Pool
	codec   *securecookie.SecureCookie
	options *sessions.Options
	ttl     time.Duration
}

var _ sessions.Store = (*PGStore)(nil)

// NewPGStore creates a Postgres-backed session store. The secret signs the
// cookie value; ttl bounds the lifetime of the server-side record.
func NewPGStore(db *pgxpool.Pool, secret []byte, ttl time.Duration, secure bool) *PGStore {
	return &PGStore{
		db:    db,
		codec: securecookie.New(secret, nil),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		ttl: ttl,
	}
}

// Get returns a session from the registry, loading it on first use.
func (s *PGStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New resolves the cookie to its server-side record, or returns a fresh
// unsaved session when there is none.
func (s *PGStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := s.codec.Decode(name, c.Value, &id); err != nil {
		// Tampered or stale cookie; hand out a fresh session.
		return session, nil
	}

	rec, err := s.load(r.Context(), id)
	if err != nil {
		return session, nil
	}

	session.ID = rec.ID
	session.Values[KeyUserID] = rec.UserID
	session.Values[KeyRole] = string(rec.RoleType)
	session.IsNew = false
	return session, nil
}

// Save persists the session record and writes the signed cookie. A
// negative MaxAge destroys the record and expires the cookie.
func (s *PGStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.destroy(r.Context(), session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	userID, ok := session.Values[KeyUserID].(int64)
	if !ok {
		return errors.New("session has no bound account")
	}
	role, _ := session.Values[KeyRole].(string)

	expiresAt := time.Now().Add(s.ttl)
	_, err := s.db.Exec(r.Context(), `
		INSERT INTO sessions (id, user_id, role_type, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET expires_at = EXCLUDED.expires_at`,
		session.ID, userID, role, expiresAt)
	if err != nil {
		logger.Error().Err(err).Str("sessionID", session.ID).Msg("Error saving session record")
		return fmt.Errorf("error saving session: %w", err)
	}

	encoded, err := s.codec.Encode(session.Name(), session.ID)
	if err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// DeleteExpired removes session records past their expiry. Called at
// startup; there is no background sweeper.
func (s *PGStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PGStore) load(ctx context.Context, id string) (*models.Session, error) {
	var rec models.Session
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, role_type, created_at, expires_at
		FROM sessions
		WHERE id = $1 AND expires_at > NOW()`,
		id).Scan(&rec.ID, &rec.UserID, &rec.RoleType, &rec.CreatedAt, &rec.ExpiresAt)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Error().Err(err).Str("sessionID", id).Msg("Error loading session record")
		}
		return nil, err
	}
	return &rec, nil
}

func (s *PGStore) destroy(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		logger.Error().Err(err).Str("sessionID", id).Msg("Error destroying session record")
		return fmt.Errorf("error destroying session: %w", err)
	}
	return nil
}
