package postgresql

import (
	"database/sql"

	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/logger"
	"github.com/google/uuid"
)

type PostgreSQL struct {
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
	return &PostgreSQL{DB: db, log: log}, nil
}

func (pg *PostgreSQL) Ping() error {
	return pg.DB.Ping()
}

func (pg *PostgreSQL) NewID() string {
	return uuid.NewString()
}
