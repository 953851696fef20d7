package storage

// Config holds the object storage settings used by the publish command.
type Config struct {
	// Endpoint is the S3-compatible endpoint, with or without scheme.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the curated tree. It is created when missing.
	Bucket string `mapstructure:"bucket" default:"icons"`
	// Prefix is the key prefix holding one folder per style.
	Prefix string `mapstructure:"prefix" default:"fluentui"`
	// Region is used when the bucket has to be created.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}
