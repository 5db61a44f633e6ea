package mongo

import (
	"time"

	"github.com/dentabookhq/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocalAppointment struct {
	ID        string    `bson:"_id" json:"id"`
	ClinicID  string    `bson:"clinicId" json:"clinicId"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Starts    time.Time `bson:"starts" json:"starts"`
	Minutes   int       `bson:"minutes" json:"minutes"`
	Reason    string    `bson:"reason" json:"reason"`
	Status    string    `bson:"status" json:"status"`
	Created   time.Time `bson:"created" json:"created"`
}

func toLocalAppointment(a model.Appointment) LocalAppointment {
	return LocalAppointment{
		ID:        a.ID,
		ClinicID:  a.ClinicID,
		DoctorID:  a.DoctorID,
		PatientID: a.PatientID,
		Starts:    a.Starts,
		Minutes:   a.Minutes,
		Reason:    a.Reason,
		Status:    a.Status,
		Created:   a.Created,
	}
}

func fromLocalAppointment(la LocalAppointment) model.Appointment {
	return model.Appointment{
		ID:        la.ID,
		ClinicID:  la.ClinicID,
		DoctorID:  la.DoctorID,
		PatientID: la.PatientID,
		Starts:    la.Starts,
		Minutes:   la.Minutes,
		Reason:    la.Reason,
		Status:    la.Status,
		Created:   la.Created,
	}
}

func (mg *Mongo) CreateAppointment(dbName string, a model.Appointment) (model.Appointment, error) {
	db := mg.Client.Database(dbName)

	if len(a.ID) == 0 {
		a.ID = mg.NewID()
	}
	if len(a.Status) == 0 {
		a.Status = model.AppointmentScheduled
	}
	if a.Created.IsZero() {
		a.Created = time.Now()
	}

	if _, err := db.Collection("appointments").InsertOne(mg.Ctx, toLocalAppointment(a)); err != nil {
		return a, err
	}
	return a, nil
}

func (mg *Mongo) FindAppointment(dbName, id string) (a model.Appointment, err error) {
	db := mg.Client.Database(dbName)

	var result LocalAppointment

	sr := db.Collection("appointments").FindOne(mg.Ctx, bson.M{FieldID: id})
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	a = fromLocalAppointment(result)
	return
}

func (mg *Mongo) ListAppointments(dbName, patientID string) ([]model.Appointment, error) {
	return mg.listAppointments(dbName, bson.M{"patientId": patientID})
}

func (mg *Mongo) ListAppointmentsBetween(dbName string, from, to time.Time) ([]model.Appointment, error) {
	filter := bson.M{"starts": bson.M{"$gte": from, "$lt": to}}
	return mg.listAppointments(dbName, filter)
}

func (mg *Mongo) listAppointments(dbName string, filter bson.M) ([]model.Appointment, error) {
	db := mg.Client.Database(dbName)

	opt := options.Find().SetSort(bson.M{"starts": 1})

	cur, err := db.Collection("appointments").Find(mg.Ctx, filter, opt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(mg.Ctx)

	var results []model.Appointment
	for cur.Next(mg.Ctx) {
		var la LocalAppointment
		if err := cur.Decode(&la); err != nil {
			return nil, err
		}

		results = append(results, fromLocalAppointment(la))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (mg *Mongo) SetAppointmentStatus(dbName, id, status string) error {
	db := mg.Client.Database(dbName)

	filter := bson.M{FieldID: id}
	update := bson.M{"$set": bson.M{"status": status}}

	if _, err := db.Collection("appointments").UpdateOne(mg.Ctx, filter, update); err != nil {
		return err
	}
	return nil
}
