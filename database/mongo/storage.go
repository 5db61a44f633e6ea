package mongo

import (
	"time"

	"github.com/dentabookhq/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocalFile struct {
	ID        string    `bson:"_id" json:"id"`
	AccountID string    `bson:"accountId" json:"accountId"`
	Key       string    `bson:"key" json:"key"`
	URL       string    `bson:"url" json:"url"`
	Size      int64     `bson:"size" json:"size"`
	Uploaded  time.Time `bson:"on" json:"uploaded"`
}

func toLocalFile(f model.File) LocalFile {
	return LocalFile{
		ID:        f.ID,
		AccountID: f.AccountID,
		Key:       f.Key,
		URL:       f.URL,
		Size:      f.Size,
		Uploaded:  f.Uploaded,
	}
}

func fromLocalFile(lf LocalFile) model.File {
	return model.File{
		ID:        lf.ID,
		AccountID: lf.AccountID,
		Key:       lf.Key,
		URL:       lf.URL,
		Size:      lf.Size,
		Uploaded:  lf.Uploaded,
	}
}

func (mg *Mongo) AddFile(dbName string, f model.File) (id string, err error) {
	db := mg.Client.Database(dbName)

	if len(f.ID) == 0 {
		f.ID = mg.NewID()
	}
	if f.Uploaded.IsZero() {
		f.Uploaded = time.Now()
	}

	if _, err = db.Collection("files").InsertOne(mg.Ctx, toLocalFile(f)); err != nil {
		return
	}

	id = f.ID
	return
}

func (mg *Mongo) GetFileByID(dbName, fileID string) (f model.File, err error) {
	db := mg.Client.Database(dbName)

	var result LocalFile

	sr := db.Collection("files").FindOne(mg.Ctx, bson.M{FieldID: fileID})
	if err = sr.Decode(&result); err != nil {
		return
	} else if err = sr.Err(); err != nil {
		return
	}

	f = fromLocalFile(result)
	return
}

func (mg *Mongo) DeleteFile(dbName, fileID string) error {
	db := mg.Client.Database(dbName)

	if _, err := db.Collection("files").DeleteOne(mg.Ctx, bson.M{FieldID: fileID}); err != nil {
		return err
	}
	return nil
}

func (mg *Mongo) ListAllFiles(dbName, accountID string) ([]model.File, error) {
	db := mg.Client.Database(dbName)

	filter := bson.M{}
	if len(accountID) > 0 {
		filter = bson.M{FieldAccountID: accountID}
	}

	opt := options.Find().SetSort(bson.M{"on": -1})

	cur, err := db.Collection("files").Find(mg.Ctx, filter, opt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(mg.Ctx)

	var results []model.File
	for cur.Next(mg.Ctx) {
		var lf LocalFile
		if err := cur.Decode(&lf); err != nil {
			return nil, err
		}

		results = append(results, fromLocalFile(lf))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
