package mongo

import (
	"time"

	"github.com/dentabookhq/core/model"

	"go.mongodb.org/mongo-driver/bson"
)

type LocalTenant struct {
	ID       string    `bson:"_id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Email    string    `bson:"email" json:"email"`
	IsActive bool      `bson:"active" json:"-"`
	Created  time.Time `bson:"created" json:"created"`
}

func toLocalTenant(t model.Tenant) LocalTenant {
	return LocalTenant{
		ID:       t.ID,
		Name:     t.Name,
		Email:    t.Email,
		IsActive: t.IsActive,
		Created:  t.Created,
	}
}

func fromLocalTenant(lt LocalTenant) model.Tenant {
	return model.Tenant{
		ID:       lt.ID,
		Name:     lt.Name,
		Email:    lt.Email,
		IsActive: lt.IsActive,
		Created:  lt.Created,
	}
}

func (mg *Mongo) CreateTenant(t model.Tenant) (model.Tenant, error) {
	db := mg.Client.Database(sysDB)

	if len(t.ID) == 0 {
		t.ID = mg.NewID()
	}
	if t.Created.IsZero() {
		t.Created = time.Now()
	}

	if _, err := db.Collection("tenants").InsertOne(mg.Ctx, toLocalTenant(t)); err != nil {
		return t, err
	}
	return t, nil
}

func (mg *Mongo) FindTenant(tenantID string) (t model.Tenant, err error) {
	db := mg.Client.Database(sysDB)

	var result LocalTenant

	sr := db.Collection("tenants").FindOne(mg.Ctx, bson.M{FieldID: tenantID})
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	t = fromLocalTenant(result)
	return
}

func (mg *Mongo) ListTenants() ([]model.Tenant, error) {
	db := mg.Client.Database(sysDB)

	filter := bson.M{"active": true}

	cur, err := db.Collection("tenants").Find(mg.Ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(mg.Ctx)

	var results []model.Tenant
	for cur.Next(mg.Ctx) {
		var lt LocalTenant
		if err := cur.Decode(&lt); err != nil {
			return nil, err
		}

		results = append(results, fromLocalTenant(lt))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mg *Mongo) TenantEmailExists(email string) (bool, error) {
	db := mg.Client.Database(sysDB)

	count, err := db.Collection("tenants").CountDocuments(mg.Ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
