package storage

import (
	"net/url"
	"strings"

	"github.com/sremy91/intuis-schedule-card/internal/storage/postgres"
	"github.com/sremy91/intuis-schedule-card/internal/storage/sqlite"
)

// NewSQLiteStore creates a file-backed store at the given path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a store over a PostgreSQL connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnStr reports whether the config string selects PostgreSQL.
func IsPostgresConnStr(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Embedded credentials are rejected; tokens belong in
// the OS keyring or environment.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
