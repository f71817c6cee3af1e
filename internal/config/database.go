package config

import "time"

// DatabaseConfig holds MongoDB connection configuration.
type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
	TLS      bool   `yaml:"tls"`

	// SnapshotTTL bounds how stale a cached board snapshot may get.
	SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
}

// StorageConfig holds S3 attachment storage configuration.
type StorageConfig struct {
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
}

// EmailConfig holds SMTP settings for invitation mail.
type EmailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}
