package config

import (
	"os"
	"strconv"
	"time"
)

var Current AppConfig

type AppConfig struct {
	// Port web server port
	Port string

	// AppEnv represent the environment in which the server runs
	AppEnv string

	// DataStore used as the data store implementation
	DataStore string
	// DatabaseURL is the database URL
	DatabaseURL string

	// StorageProvider used as the file storage implementation
	StorageProvider string
	// LocalStorageURL for files when using the local storage provider
	LocalStorageURL string
	// UploadTimeout upper bound for one streaming transfer to the store
	UploadTimeout time.Duration

	// MailProvider used as the sending mails implementation
	MailProvider string
	// FromEmail used when DentaBook sends email
	FromEmail string
	// FromName used when DentaBook sends email
	FromName string

	// RedisURL URL for Redis
	RedisURL string
	// RedisHost if RedisURL is not used, host for Redis
	RedisHost string
	// RedisPassword if RedisURL is not used, password for Redis
	RedisPassword string

	// AWSRegion region for AWS
	AWSRegion string
	// AWSS3Bucket S3 bucket holding uploaded media
	AWSS3Bucket string
	// AWSCDNURL CDN URL serving the S3 bucket
	AWSCDNURL string

	// SearchIndexPath path to the bleve clinic directory index
	SearchIndexPath string

	// ReminderTime time of day (HH:MM, UTC) the reminder job runs
	ReminderTime string

	// LogConsoleLevel minimum level written to the console
	LogConsoleLevel string
	// LogFilename if set, logs are also written to this rotating file
	LogFilename string
}

func LoadConfig() AppConfig {
	return AppConfig{
		Port:            os.Getenv("PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		DataStore:       os.Getenv("DATA_STORE"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		StorageProvider: os.Getenv("STORAGE_PROVIDER"),
		LocalStorageURL: os.Getenv("LOCAL_STORAGE_URL"),
		UploadTimeout:   uploadTimeout(),
		MailProvider:    os.Getenv("MAIL_PROVIDER"),
		FromEmail:       os.Getenv("FROM_EMAIL"),
		FromName:        os.Getenv("FROM_NAME"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		AWSS3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		AWSCDNURL:       os.Getenv("AWS_CDN_URL"),
		SearchIndexPath: os.Getenv("SEARCH_INDEX_PATH"),
		ReminderTime:    os.Getenv("REMINDER_TIME"),
		LogConsoleLevel: os.Getenv("LOG_CONSOLE_LEVEL"),
		LogFilename:     os.Getenv("LOG_FILENAME"),
	}
}

// uploadTimeout reads UPLOAD_TIMEOUT_SECONDS. The default leaves enough
// room for full-size clinic gallery images on slow links.
func uploadTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("UPLOAD_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(secs) * time.Second
}
