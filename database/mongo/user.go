package mongo

import (
	"time"

	"github.com/dentabookhq/core/model"

	"go.mongodb.org/mongo-driver/bson"
)

type LocalUser struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"pw" json:"-"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Phone        string    `bson:"phone" json:"phone"`
	Role         int       `bson:"role" json:"role"`
	ProfileImage string    `bson:"profileImage" json:"profileImage"`
	Token        string    `bson:"token" json:"-"`
	Created      time.Time `bson:"created" json:"created"`
}

func toLocalUser(u model.User) LocalUser {
	return LocalUser{
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		Token:        u.Token,
		Created:      u.Created,
	}
}

func fromLocalUser(lu LocalUser) model.User {
	return model.User{
		ID:           lu.ID,
		Email:        lu.Email,
		Password:     lu.Password,
		FullName:     lu.FullName,
		Phone:        lu.Phone,
		Role:         lu.Role,
		ProfileImage: lu.ProfileImage,
		Token:        lu.Token,
		Created:      lu.Created,
	}
}

func (mg *Mongo) CreateUser(dbName string, u model.User) (model.User, error) {
	db := mg.Client.Database(dbName)

	if len(u.ID) == 0 {
		u.ID = mg.NewID()
	}
	if u.Created.IsZero() {
		u.Created = time.Now()
	}

	if _, err := db.Collection("users").InsertOne(mg.Ctx, toLocalUser(u)); err != nil {
		return u, err
	}
	return u, nil
}

func (mg *Mongo) FindUser(dbName, userID string) (model.User, error) {
	return mg.findOneUser(dbName, bson.M{FieldID: userID})
}

func (mg *Mongo) FindUserByEmail(dbName, email string) (model.User, error) {
	return mg.findOneUser(dbName, bson.M{"email": email})
}

func (mg *Mongo) FindUserByToken(dbName, userID, token string) (model.User, error) {
	return mg.findOneUser(dbName, bson.M{FieldID: userID, "token": token})
}

func (mg *Mongo) findOneUser(dbName string, filter bson.M) (u model.User, err error) {
	db := mg.Client.Database(dbName)

	var result LocalUser

	sr := db.Collection("users").FindOne(mg.Ctx, filter)
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	u = fromLocalUser(result)
	return
}

func (mg *Mongo) UserEmailExists(dbName, email string) (bool, error) {
	db := mg.Client.Database(dbName)

	count, err := db.Collection("users").CountDocuments(mg.Ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mg *Mongo) SetUserProfileImage(dbName, userID, url string) error {
	db := mg.Client.Database(dbName)

	filter := bson.M{FieldID: userID}
	update := bson.M{"$set": bson.M{"profileImage": url}}

	if _, err := db.Collection("users").UpdateOne(mg.Ctx, filter, update); err != nil {
		return err
	}
	return nil
}
