package dentabook

import (
	"log"
	"os"
	"path"
	"testing"
	"time"

	"github.com/dentabookhq/core/cache"
	"github.com/dentabookhq/core/config"
	"github.com/dentabookhq/core/database/memory"
	"github.com/dentabookhq/core/email"
	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/search"
	"github.com/dentabookhq/core/storage"
	"github.com/dentabookhq/core/upload"

	"golang.org/x/crypto/bcrypt"
)

const (
	dbName        = "unittest"
	staffEmail    = "staff@test.com"
	staffPassword = "my_unittest_pw"
	userEmail     = "user@test.com"
	userPassword  = "another_fake_password"
)

var (
	pubKey     string
	staffToken string
	userToken  string
	staffUser  model.User
	patient    model.User

	pipe  *upload.Pipeline
	mship *membership
)

func TestMain(m *testing.M) {
	config.Current = config.AppConfig{
		AppEnv:          AppEnvDev,
		LocalStorageURL: "http://localhost:8099",
		UploadTimeout:   30 * time.Second,
	}

	appLog = logger.Get(config.Current)

	datastore = memory.New()
	volatile = cache.NewDevCache()
	emailer = email.Dev{}
	storer = storage.Local{}

	tmp, err := os.MkdirTemp("", "dentabook-fts")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmp)

	ftsIndex, err = search.New(path.Join(tmp, "test.fts"))
	if err != nil {
		log.Fatal(err)
	}

	pipe = upload.NewPipeline(upload.NewRegistry(), storer, config.Current.UploadTimeout, appLog)

	mship = &membership{log: appLog}

	setupTestTenant()

	os.Exit(m.Run())
}

func setupTestTenant() {
	tenant, err := datastore.CreateTenant(model.Tenant{
		Name:     dbName,
		Email:    staffEmail,
		IsActive: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	pubKey = tenant.ID

	staffUser = createTestUser(staffEmail, staffPassword, model.RoleStaff)
	patient = createTestUser(userEmail, userPassword, model.RolePatient)

	staffToken = signTestToken(staffUser)
	userToken = signTestToken(patient)
}

func createTestUser(userEmail, password string, role int) model.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u, err := datastore.CreateUser(dbName, model.User{
		Email:    userEmail,
		Password: string(hashed),
		FullName: userEmail,
		Role:     role,
		Token:    datastore.NewID(),
	})
	if err != nil {
		log.Fatal(err)
	}
	return u
}

func signTestToken(u model.User) string {
	jwtBytes, err := model.NewJWT(u.ID, u.Token)
	if err != nil {
		log.Fatal(err)
	}
	return jwtBytes
}
