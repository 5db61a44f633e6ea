package mongo

import (
	"time"

	"github.com/dentabookhq/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocalClinic struct {
	ID       string    `bson:"_id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	City     string    `bson:"city" json:"city"`
	Address  string    `bson:"address" json:"address"`
	Phone    string    `bson:"phone" json:"phone"`
	Services []string  `bson:"services" json:"services"`
	ImageURL string    `bson:"imageUrl" json:"imageUrl"`
	Created  time.Time `bson:"created" json:"created"`
}

func toLocalClinic(c model.Clinic) LocalClinic {
	return LocalClinic{
		ID:       c.ID,
		Name:     c.Name,
		City:     c.City,
		Address:  c.Address,
		Phone:    c.Phone,
		Services: c.Services,
		ImageURL: c.ImageURL,
		Created:  c.Created,
	}
}

func fromLocalClinic(lc LocalClinic) model.Clinic {
	return model.Clinic{
		ID:       lc.ID,
		Name:     lc.Name,
		City:     lc.City,
		Address:  lc.Address,
		Phone:    lc.Phone,
		Services: lc.Services,
		ImageURL: lc.ImageURL,
		Created:  lc.Created,
	}
}

type LocalDoctor struct {
	ID        string    `bson:"_id" json:"id"`
	ClinicID  string    `bson:"clinicId" json:"clinicId"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Bio       string    `bson:"bio" json:"bio"`
	ImageURL  string    `bson:"imageUrl" json:"imageUrl"`
	Created   time.Time `bson:"created" json:"created"`
}

func toLocalDoctor(d model.Doctor) LocalDoctor {
	return LocalDoctor{
		ID:        d.ID,
		ClinicID:  d.ClinicID,
		FullName:  d.FullName,
		Specialty: d.Specialty,
		Bio:       d.Bio,
		ImageURL:  d.ImageURL,
		Created:   d.Created,
	}
}

func fromLocalDoctor(ld LocalDoctor) model.Doctor {
	return model.Doctor{
		ID:        ld.ID,
		ClinicID:  ld.ClinicID,
		FullName:  ld.FullName,
		Specialty: ld.Specialty,
		Bio:       ld.Bio,
		ImageURL:  ld.ImageURL,
		Created:   ld.Created,
	}
}

func (mg *Mongo) CreateClinic(dbName string, c model.Clinic) (model.Clinic, error) {
	db := mg.Client.Database(dbName)

	if len(c.ID) == 0 {
		c.ID = mg.NewID()
	}
	if c.Created.IsZero() {
		c.Created = time.Now()
	}

	if _, err := db.Collection("clinics").InsertOne(mg.Ctx, toLocalClinic(c)); err != nil {
		return c, err
	}
	return c, nil
}

func (mg *Mongo) UpdateClinic(dbName string, c model.Clinic) error {
	db := mg.Client.Database(dbName)

	filter := bson.M{FieldID: c.ID}
	update := bson.M{"$set": bson.M{
		"name":     c.Name,
		"city":     c.City,
		"address":  c.Address,
		"phone":    c.Phone,
		"services": c.Services,
	}}

	if _, err := db.Collection("clinics").UpdateOne(mg.Ctx, filter, update); err != nil {
		return err
	}
	return nil
}

func (mg *Mongo) FindClinic(dbName, clinicID string) (c model.Clinic, err error) {
	db := mg.Client.Database(dbName)

	var result LocalClinic

	sr := db.Collection("clinics").FindOne(mg.Ctx, bson.M{FieldID: clinicID})
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	c = fromLocalClinic(result)
	return
}

func (mg *Mongo) ListClinics(dbName string) ([]model.Clinic, error) {
	db := mg.Client.Database(dbName)

	opt := options.Find().SetSort(bson.M{"name": 1})

	cur, err := db.Collection("clinics").Find(mg.Ctx, bson.M{}, opt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(mg.Ctx)

	var results []model.Clinic
	for cur.Next(mg.Ctx) {
		var lc LocalClinic
		if err := cur.Decode(&lc); err != nil {
			return nil, err
		}

		results = append(results, fromLocalClinic(lc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mg *Mongo) SetClinicImage(dbName, clinicID, url string) error {
	db := mg.Client.Database(dbName)

	filter := bson.M{FieldID: clinicID}
	update := bson.M{"$set": bson.M{"imageUrl": url}}

	if _, err := db.Collection("clinics").UpdateOne(mg.Ctx, filter, update); err != nil {
		return err
	}
	return nil
}

func (mg *Mongo) CreateDoctor(dbName string, d model.Doctor) (model.Doctor, error) {
	db := mg.Client.Database(dbName)

	if len(d.ID) == 0 {
		d.ID = mg.NewID()
	}
	if d.Created.IsZero() {
		d.Created = time.Now()
	}

	if _, err := db.Collection("doctors").InsertOne(mg.Ctx, toLocalDoctor(d)); err != nil {
		return d, err
	}
	return d, nil
}

func (mg *Mongo) FindDoctor(dbName, doctorID string) (d model.Doctor, err error) {
	db := mg.Client.Database(dbName)

	var result LocalDoctor

	sr := db.Collection("doctors").FindOne(mg.Ctx, bson.M{FieldID: doctorID})
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	d = fromLocalDoctor(result)
	return
}

func (mg *Mongo) ListDoctors(dbName, clinicID string) ([]model.Doctor, error) {
	db := mg.Client.Database(dbName)

	filter := bson.M{}
	if len(clinicID) > 0 {
		filter = bson.M{"clinicId": clinicID}
	}

	opt := options.Find().SetSort(bson.M{"fullName": 1})

	cur, err := db.Collection("doctors").Find(mg.Ctx, filter, opt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(mg.Ctx)

	var results []model.Doctor
	for cur.Next(mg.Ctx) {
		var ld LocalDoctor
		if err := cur.Decode(&ld); err != nil {
			return nil, err
		}

		results = append(results, fromLocalDoctor(ld))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mg *Mongo) SetDoctorImage(dbName, doctorID, url string) error {
	db := mg.Client.Database(dbName)

	filter := bson.M{FieldID: doctorID}
	update := bson.M{"$set": bson.M{"imageUrl": url}}

	if _, err := db.Collection("doctors").UpdateOne(mg.Ctx, filter, update); err != nil {
		return err
	}
	return nil
}
