package postgresql

import (
	"database/sql"
	"fmt"
)

// the system schema holds the tenant directory, each tenant gets
// its own schema named after model.Tenant.Name
const sysSchema = "dentabook"

var sysDDL = fmt.Sprintf(`
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE SCHEMA IF NOT EXISTS %s;

	CREATE TABLE IF NOT EXISTS %s.tenants (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		name text UNIQUE NOT NULL,
		email text NOT NULL,
		is_active boolean NOT NULL,
		created timestamp NOT NULL
	);
`, sysSchema, sysSchema)

const tenantDDL = `
	CREATE SCHEMA IF NOT EXISTS %[1]s;

	CREATE TABLE IF NOT EXISTS %[1]s.users (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		email text UNIQUE NOT NULL,
		password text NOT NULL,
		full_name text NOT NULL,
		phone text NOT NULL DEFAULT '',
		role integer NOT NULL DEFAULT 0,
		profile_image text NOT NULL DEFAULT '',
		token text NOT NULL,
		created timestamp NOT NULL
	);

	CREATE TABLE IF NOT EXISTS %[1]s.clinics (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		name text NOT NULL,
		city text NOT NULL DEFAULT '',
		address text NOT NULL DEFAULT '',
		phone text NOT NULL DEFAULT '',
		services text[] NOT NULL DEFAULT '{}',
		image_url text NOT NULL DEFAULT '',
		created timestamp NOT NULL
	);

	CREATE TABLE IF NOT EXISTS %[1]s.doctors (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		clinic_id uuid REFERENCES %[1]s.clinics(id) ON DELETE CASCADE,
		full_name text NOT NULL,
		specialty text NOT NULL DEFAULT '',
		bio text NOT NULL DEFAULT '',
		image_url text NOT NULL DEFAULT '',
		created timestamp NOT NULL
	);

	CREATE TABLE IF NOT EXISTS %[1]s.appointments (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		clinic_id uuid NOT NULL,
		doctor_id uuid NOT NULL,
		patient_id uuid NOT NULL,
		starts timestamp NOT NULL,
		minutes integer NOT NULL DEFAULT 30,
		reason text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT 'scheduled',
		created timestamp NOT NULL
	);

	CREATE INDEX IF NOT EXISTS %[1]s_appt_starts_idx ON %[1]s.appointments (starts);

	CREATE TABLE IF NOT EXISTS %[1]s.files (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4 (),
		account_id uuid NOT NULL,
		key text NOT NULL,
		url text NOT NULL,
		size bigint NOT NULL DEFAULT 0,
		uploaded timestamp NOT NULL
	);
`

func migrate(db *sql.DB) error {
	if _, err := db.Exec(sysDDL); err != nil {
		return fmt.Errorf("error running system migration: %w", err)
	}
	return nil
}

func createTenantSchema(db *sql.DB, name string) error {
	if _, err := db.Exec(fmt.Sprintf(tenantDDL, name)); err != nil {
		return fmt.Errorf("error creating tenant schema %s: %w", name, err)
	}
	return nil
}
