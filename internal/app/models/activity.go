package models

import "time"

// Activity is an append-only record of a tracked account action based on
// the 'activities' table. Read newest-first.
type Activity struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
}

// Session is the server-side record binding a request to an authenticated
// account and role, based on the 'sessions' table. The browser cookie
// carries only the signed session id.
type Session struct {
	ID        string    `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	RoleType  RoleType  `json:"roleType" db:"role_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}
