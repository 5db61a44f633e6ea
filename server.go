package dentabook

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dentabookhq/core/cache"
	"github.com/dentabookhq/core/config"
	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/database/memory"
	"github.com/dentabookhq/core/database/mongo"
	"github.com/dentabookhq/core/database/postgresql"
	"github.com/dentabookhq/core/database/sqlite"
	"github.com/dentabookhq/core/email"
	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/reminder"
	"github.com/dentabookhq/core/search"
	"github.com/dentabookhq/core/storage"
	"github.com/dentabookhq/core/upload"

	_ "github.com/lib/pq"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

var (
	datastore database.Persister
	volatile  cache.Volatilizer
	emailer   email.Mailer
	storer    storage.Storer
	ftsIndex  *search.Search
	appLog    *logger.Logger
)

// Start starts the web server and all dependencies services
func Start(cfg config.AppConfig) {
	appLog = logger.Get(cfg)

	if err := initServices(cfg); err != nil {
		appLog.Fatal().Err(err).Msg("cannot initialize services")
	}

	pipe := upload.NewPipeline(upload.NewRegistry(), storer, cfg.UploadTimeout, appLog)

	rem := reminder.New(datastore, emailer, cfg.FromEmail, cfg.FromName, appLog)
	if at := cfg.ReminderTime; len(at) > 0 {
		if err := rem.Start(at); err != nil {
			appLog.Fatal().Err(err).Msg("cannot start reminder scheduler")
		}
		defer rem.Stop()
	}

	pubWithTenant := []middleware.Middleware{
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
	}

	stdAuth := []middleware.Middleware{
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
		middleware.RequireAuth(datastore, volatile),
	}

	stdStaff := []middleware.Middleware{
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
		middleware.RequireAuth(datastore, volatile),
		middleware.RequireRole(model.RoleStaff),
	}

	m := &membership{log: appLog}
	http.Handle("/login", middleware.Chain(http.HandlerFunc(m.login), pubWithTenant...))
	http.Handle("/register", middleware.Chain(http.HandlerFunc(m.register), pubWithTenant...))
	http.Handle("/email", middleware.Chain(http.HandlerFunc(m.emailExists), pubWithTenant...))
	http.Handle("/me", middleware.Chain(http.HandlerFunc(m.me), stdAuth...))

	// media uploads
	u := &uploads{pipe: pipe, log: appLog}
	http.Handle("/profile-image", middleware.Chain(http.HandlerFunc(u.profileImage), stdAuth...))
	http.Handle("/clinic-image", middleware.Chain(http.HandlerFunc(u.clinicImage), stdStaff...))
	http.Handle("/doctor-image", middleware.Chain(http.HandlerFunc(u.doctorImage), stdStaff...))
	http.Handle("/general-image", middleware.Chain(http.HandlerFunc(u.generalImage), stdAuth...))
	http.Handle("/cancel/", middleware.Chain(http.HandlerFunc(u.cancel), stdAuth...))
	http.Handle("/files", middleware.Chain(http.HandlerFunc(u.listFiles), stdStaff...))

	ex := &extras{pipe: pipe, log: appLog}
	http.Handle("/resize-image", middleware.Chain(http.HandlerFunc(ex.resizeImage), stdAuth...))

	// public clinic directory
	c := &clinics{log: appLog}
	http.Handle("/clinics", middleware.Chain(http.HandlerFunc(c.root), pubWithTenant...))
	http.Handle("/clinics/search", middleware.Chain(http.HandlerFunc(c.search), pubWithTenant...))
	http.Handle("/clinics/create", middleware.Chain(http.HandlerFunc(c.create), stdStaff...))
	http.Handle("/clinics/update", middleware.Chain(http.HandlerFunc(c.update), stdStaff...))
	http.Handle("/clinics/", middleware.Chain(http.HandlerFunc(c.get), pubWithTenant...))

	d := &doctors{log: appLog}
	http.Handle("/doctors", middleware.Chain(http.HandlerFunc(d.list), pubWithTenant...))
	http.Handle("/doctors/create", middleware.Chain(http.HandlerFunc(d.create), stdStaff...))
	http.Handle("/doctors/", middleware.Chain(http.HandlerFunc(d.get), pubWithTenant...))

	a := &appointments{log: appLog}
	http.Handle("/appointments", middleware.Chain(http.HandlerFunc(a.root), stdAuth...))
	http.Handle("/appointments/status", middleware.Chain(http.HandlerFunc(a.setStatus), stdAuth...))
	http.Handle("/appointments/", middleware.Chain(http.HandlerFunc(a.get), stdAuth...))

	http.HandleFunc("/ping", ping)

	// graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

		<-ch
		cancel()
	}()

	httpsvr := &http.Server{
		Addr: ":" + cfg.Port,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpsvr.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return httpsvr.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		appLog.Info().Msgf("exit reason: %s", err)
	}
}

func initServices(cfg config.AppConfig) error {
	if err := openDatabase(cfg); err != nil {
		return err
	}

	if strings.EqualFold(cfg.AppEnv, AppEnvDev) && len(cfg.RedisURL)+len(cfg.RedisHost) == 0 {
		volatile = cache.NewDevCache()
	} else {
		volatile = cache.NewCache(appLog)
	}

	if strings.EqualFold(cfg.MailProvider, email.MailProviderSES) {
		emailer = email.AWSSES{}
	} else {
		emailer = email.Dev{}
	}

	if strings.EqualFold(cfg.StorageProvider, storage.StorageProviderS3) {
		storer = storage.S3{}
	} else {
		storer = storage.Local{}
	}

	idxPath := cfg.SearchIndexPath
	if len(idxPath) == 0 {
		idxPath = "dentabook.fts"
	}

	idx, err := search.New(idxPath)
	if err != nil {
		return fmt.Errorf("cannot open the search index: %w", err)
	}
	ftsIndex = idx

	return nil
}

func openDatabase(cfg config.AppConfig) error {
	switch cfg.DataStore {
	case database.DataStorePostgreSQL:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("cannot connect to postgres: %w", err)
		}

		datastore, err = postgresql.New(db, appLog)
		return err
	case database.DataStoreSQLite:
		db, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("cannot open the sqlite file: %w", err)
		}

		datastore, err = sqlite.New(db, appLog)
		return err
	case database.DataStoreMongoDB:
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
		if err != nil {
			return fmt.Errorf("cannot connect to mongo: %w", err)
		}

		datastore = mongo.New(client, appLog)
		return datastore.Ping()
	default:
		datastore = memory.New()
		return nil
	}
}

func ping(w http.ResponseWriter, r *http.Request) {
	if err := datastore.Ping(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, "pong")
}

func getURLPart(s string, idx int) string {
	parts := strings.Split(s, "/")
	if len(parts) <= idx {
		return ""
	}
	return parts[idx]
}
