package sqlite

import (
	"database/sql"

	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/logger"
	"github.com/google/uuid"
)

type SQLite struct {
	DB  *sql.DB
	log *logger.Logger
}

// Scanner matches both *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

func New(db *sql.DB, log *logger.Logger) (database.Persister, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &SQLite{DB: db, log: log}, nil
}

func (sl *SQLite) Ping() error {
	return sl.DB.Ping()
}

func (sl *SQLite) NewID() string {
	return uuid.NewString()
}
