// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage driver: sqlite, postgres or memory
//	-d string   database DSN (file path for sqlite)
//	-k string   secret used to seal stored values
//	-g string   gallery API endpoint
//	-o string   download directory
//	-t int      gallery request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or integer
// nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "storage_driver": "sqlite",
//	  "database_dsn": "gophauth.db",
//	  "gallery_endpoint": "https://picsum.photos",
//	  "gallery_page_size": 10,
//	  "request_timeout": "30s",
//	  "download_dir": "downloads",
//	  "s3_bucket": "gallery"
//	}
package config
