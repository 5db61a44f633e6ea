package mongo

import (
	"context"
	"time"

	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/logger"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// tenants live in the system database, each tenant gets its
	// own database named after model.Tenant.Name
	sysDB = "dentasys"

	FieldID        = "_id"
	FieldAccountID = "accountId"
)

type Mongo struct {
	Client *mongo.Client
	Ctx    context.Context
	log    *logger.Logger
}

func New(client *mongo.Client, log *logger.Logger) database.Persister {
	return &Mongo{
		Client: client,
		Ctx:    context.Background(),
		log:    log,
	}
}

func (mg *Mongo) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return mg.Client.Ping(ctx, readpref.Primary())
}

func (mg *Mongo) NewID() string {
	return uuid.NewString()
}
