package config

import (
	"os"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - StorageDriver / DatabaseDSN: where the credential record lives.
//   - StoreSecret: when non-empty, stored values are sealed with a key derived from it.
//   - GalleryEndpoint / GalleryPageSize: photo list API and its page size.
//   - RequestTimeout: upper bound for a single gallery HTTP call.
//   - DownloadDir: local directory for downloaded images (unless S3Bucket is set).
//   - S3*: optional object storage sink for downloads.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StorageDriver   string
	DatabaseDSN     string
	StoreSecret     string
	GalleryEndpoint string
	GalleryPageSize int
	RequestTimeout  time.Duration
	DownloadDir     string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.DatabaseDSN = "gophauth.db"
	c.GalleryEndpoint = "https://picsum.photos"
	c.GalleryPageSize = 10
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
}

// UseS3 reports whether downloads go to object storage instead of DownloadDir.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
