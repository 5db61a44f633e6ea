package memory

import (
	"errors"
	"log"
	"os"
	"testing"

	"github.com/dentabookhq/core/model"
)

const (
	adminEmail = "owner@test.com"
	confDBName = "testdb"
)

var (
	datastore  *Memory
	testTenant model.Tenant
	adminUser  model.User
)

func TestMain(m *testing.M) {
	datastore = &Memory{DB: make(map[string]map[string][]byte)}

	if err := datastore.Ping(); err != nil {
		log.Fatal(err)
	}

	if err := createTenantAndAdmin(); err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func createTenantAndAdmin() error {
	exists, err := datastore.TenantEmailExists(adminEmail)
	if err != nil {
		return err
	} else if exists {
		return errors.New("admin email exists, should not")
	}

	t := model.Tenant{
		Name:     confDBName,
		Email:    adminEmail,
		IsActive: true,
	}

	t, err = datastore.CreateTenant(t)
	if err != nil {
		return err
	}

	testTenant = t

	u := model.User{
		Email:    adminEmail,
		Password: adminEmail,
		FullName: "Admin",
		Role:     model.RoleAdmin,
		Token:    adminEmail,
	}

	u, err = datastore.CreateUser(confDBName, u)
	if err != nil {
		return err
	}

	adminUser = u
	return nil
}

func TestFindTenant(t *testing.T) {
	tenant, err := datastore.FindTenant(testTenant.ID)
	if err != nil {
		t.Fatal(err)
	} else if tenant.Name != confDBName {
		t.Errorf("expected tenant name to be %s got %s", confDBName, tenant.Name)
	}
}

func TestUserLookups(t *testing.T) {
	u, err := datastore.FindUserByEmail(confDBName, adminEmail)
	if err != nil {
		t.Fatal(err)
	} else if u.ID != adminUser.ID {
		t.Errorf("expected user id to be %s got %s", adminUser.ID, u.ID)
	}

	if _, err := datastore.FindUserByToken(confDBName, adminUser.ID, "wrong"); err == nil {
		t.Errorf("expected token mismatch to fail")
	}

	u, err = datastore.FindUserByToken(confDBName, adminUser.ID, adminUser.Token)
	if err != nil {
		t.Fatal(err)
	} else if u.Email != adminEmail {
		t.Errorf("expected email to be %s got %s", adminEmail, u.Email)
	}
}

func TestSetUserProfileImage(t *testing.T) {
	if err := datastore.SetUserProfileImage(confDBName, adminUser.ID, "https://cdn/test.jpg"); err != nil {
		t.Fatal(err)
	}

	u, err := datastore.FindUser(confDBName, adminUser.ID)
	if err != nil {
		t.Fatal(err)
	} else if u.ProfileImage != "https://cdn/test.jpg" {
		t.Errorf("profile image not saved, got %s", u.ProfileImage)
	}
}
