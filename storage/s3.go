package storage

import (
	"context"
	"fmt"

	"github.com/dentabookhq/core/config"
	"github.com/dentabookhq/core/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3 struct{}

func (S3) Save(ctx context.Context, data model.UploadFileData) (SavedFile, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(config.Current.AWSRegion)})
	if err != nil {
		return SavedFile{}, err
	}

	svc := s3.New(sess)
	obj := &s3.PutObjectInput{}
	obj.Body = data.File
	obj.ACL = aws.String(s3.ObjectCannedACLPublicRead)
	obj.Bucket = aws.String(config.Current.AWSS3Bucket)
	obj.Key = aws.String(data.FileKey)
	if len(data.ContentType) > 0 {
		obj.ContentType = aws.String(data.ContentType)
	}
	if len(data.Transform) > 0 {
		// the transform spec is opaque to us, the CDN layer interprets it
		obj.Metadata = map[string]*string{"transform": aws.String(data.Transform)}
	}

	if _, err := svc.PutObjectWithContext(ctx, obj); err != nil {
		return SavedFile{}, err
	}

	url := fmt.Sprintf(
		"%s/%s",
		config.Current.AWSCDNURL,
		data.FileKey,
	)

	return SavedFile{Key: data.FileKey, URL: url}, nil
}

func (S3) Delete(ctx context.Context, fileKey string) error {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(config.Current.AWSRegion)})
	if err != nil {
		return err
	}

	svc := s3.New(sess)
	obj := &s3.DeleteObjectInput{
		Bucket: aws.String(config.Current.AWSS3Bucket),
		Key:    aws.String(fileKey),
	}
	if _, err := svc.DeleteObjectWithContext(ctx, obj); err != nil {
		return err
	}

	return nil
}
