package sqlite

import (
	"database/sql"
	"strings"
)

// SQLite has no schemas, tenant isolation is done via a
// {schema}_ table name prefix where {schema} is the tenant name.
func migrate(db *sql.DB) error {
	var table string
	db.QueryRow(`
		SELECT name
		FROM sqlite_master
		WHERE type='table' AND name='dentabook_tenants';
	`).Scan(&table)

	if len(table) > 0 {
		return nil
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS dentabook_tenants (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL,
			is_active BOOLEAN NOT NULL,
			created TIMESTAMP NOT NULL
		);
	`)
	return err
}

func (sl *SQLite) createTenantTables(schema string) error {
	qry := strings.Replace(`
		CREATE TABLE IF NOT EXISTS {schema}_users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			role INTEGER NOT NULL DEFAULT 0,
			profile_image TEXT NOT NULL DEFAULT '',
			token TEXT NOT NULL,
			created TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS {schema}_clinics (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			services TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS {schema}_doctors (
			id TEXT PRIMARY KEY,
			clinic_id TEXT REFERENCES {schema}_clinics(id) ON DELETE CASCADE,
			full_name TEXT NOT NULL,
			specialty TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS {schema}_appointments (
			id TEXT PRIMARY KEY,
			clinic_id TEXT NOT NULL,
			doctor_id TEXT NOT NULL,
			patient_id TEXT NOT NULL,
			starts TIMESTAMP NOT NULL,
			minutes INTEGER NOT NULL DEFAULT 30,
			reason TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'scheduled',
			created TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS {schema}_appointments_starts_idx ON {schema}_appointments (starts);

		CREATE TABLE IF NOT EXISTS {schema}_files (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL,
			key TEXT UNIQUE NOT NULL,
			url TEXT NOT NULL,
			size INTEGER NOT NULL,
			uploaded TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS {schema}_files_acctid_idx ON {schema}_files (account_id);
	`, "{schema}", schema, -1)

	if _, err := sl.DB.Exec(qry); err != nil {
		return err
	}

	return nil
}
