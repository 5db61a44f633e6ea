package memory

import (
	"strings"
	"time"

	"github.com/dentabookhq/core/model"
)

// tenants live in the system database, not in any tenant database
const sysDB = "dentasys"

func (m *Memory) CreateTenant(t model.Tenant) (model.Tenant, error) {
	if len(t.ID) == 0 {
		t.ID = m.NewID()
	}
	t.Created = time.Now()

	if err := create(m, sysDB, colTenants, t.ID, t); err != nil {
		return t, err
	}
	return t, nil
}

func (m *Memory) FindTenant(tenantID string) (t model.Tenant, err error) {
	err = getByID(m, sysDB, colTenants, tenantID, &t)
	return
}

func (m *Memory) ListTenants() ([]model.Tenant, error) {
	return all[model.Tenant](m, sysDB, colTenants)
}

func (m *Memory) TenantEmailExists(email string) (bool, error) {
	tenants, err := m.ListTenants()
	if err != nil {
		return false, err
	}

	matches := filter(tenants, func(t model.Tenant) bool {
		return strings.EqualFold(t.Email, email)
	})
	return len(matches) > 0, nil
}
