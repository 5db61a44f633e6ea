package postgresql

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
)

func (pg *PostgreSQL) CreateTenant(tenant model.Tenant) (t model.Tenant, err error) {
	t = tenant
	if t.Created.IsZero() {
		t.Created = time.Now()
	}

	if err = createTenantSchema(pg.DB, t.Name); err != nil {
		return
	}

	var id string
	err = pg.DB.QueryRow(fmt.Sprintf(`
		INSERT INTO %s.tenants(name, email, is_active, created)
		VALUES($1, $2, $3, $4)
		RETURNING id;
	`, sysSchema),
		t.Name,
		t.Email,
		t.IsActive,
		t.Created,
	).Scan(&id)
	if err != nil {
		return
	}

	t.ID = id
	return
}

func (pg *PostgreSQL) FindTenant(tenantID string) (t model.Tenant, err error) {
	row := pg.DB.QueryRow(fmt.Sprintf(`
		SELECT *
		FROM %s.tenants
		WHERE id = $1
	`, sysSchema), tenantID)

	err = scanTenant(row, &t)
	return
}

func (pg *PostgreSQL) ListTenants() (results []model.Tenant, err error) {
	rows, err := pg.DB.Query(fmt.Sprintf(`
		SELECT *
		FROM %s.tenants
		WHERE is_active = true
	`, sysSchema))
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Tenant
		if err = scanTenant(rows, &t); err != nil {
			return
		}

		results = append(results, t)
	}

	err = rows.Err()
	return
}

func (pg *PostgreSQL) TenantEmailExists(email string) (bool, error) {
	var count int
	err := pg.DB.QueryRow(fmt.Sprintf(`
		SELECT COUNT(*) FROM %s.tenants WHERE email = $1
	`, sysSchema), email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanTenant(rows Scanner, t *model.Tenant) error {
	return rows.Scan(
		&t.ID,
		&t.Name,
		&t.Email,
		&t.IsActive,
		&t.Created,
	)
}
