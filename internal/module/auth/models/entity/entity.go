package entity

import (
	"database/sql"
	"time"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	ID        string         `db:"id"`
	Email     string         `db:"email"`
	Name      string         `db:"name"`
	Password  sql.NullString `db:"password"`
	Role      string         `db:"role"`
	Provider  string         `db:"provider"`
	GoogleID  sql.NullString `db:"google_id"`
	Avatar    sql.NullString `db:"avatar"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// GoogleProfile is the subset of the Google userinfo document used for login.
type GoogleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
