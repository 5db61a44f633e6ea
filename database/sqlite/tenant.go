package sqlite

import (
	"time"

	"github.com/dentabookhq/core/model"
)

func (sl *SQLite) CreateTenant(tenant model.Tenant) (t model.Tenant, err error) {
	t = tenant
	if t.Created.IsZero() {
		t.Created = time.Now()
	}

	id := sl.NewID()
	_, err = sl.DB.Exec(`
		INSERT INTO dentabook_tenants(id, name, email, is_active, created)
		VALUES($1, $2, $3, $4, $5);
	`, id,
		t.Name,
		t.Email,
		t.IsActive,
		t.Created,
	)
	if err != nil {
		return
	}

	t.ID = id

	err = sl.createTenantTables(t.Name)
	return
}

func (sl *SQLite) FindTenant(tenantID string) (t model.Tenant, err error) {
	row := sl.DB.QueryRow(`
		SELECT *
		FROM dentabook_tenants
		WHERE id = $1
	`, tenantID)

	err = scanTenant(row, &t)
	return
}

func (sl *SQLite) ListTenants() (results []model.Tenant, err error) {
	rows, err := sl.DB.Query(`
		SELECT *
		FROM dentabook_tenants
		WHERE is_active = 1
	`)
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

func (sl *SQLite) TenantEmailExists(email string) (bool, error) {
	var count int
	err := sl.DB.QueryRow(`
		SELECT COUNT(*) FROM dentabook_tenants WHERE email = $1
	`, email).Scan(&count)
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
