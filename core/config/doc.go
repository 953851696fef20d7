// Package config provides configuration management for the icon curator.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file, and command-line flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Curation: source and output roots, default size and styles, naming and reconcile modes
//   - Catalog: recording the curated catalog and caching its listing
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags. Environment variables use the upper-cased
// key with dots replaced by underscores (CURATION_DEFAULT_SIZE). Flags annotated with
// the "config" key take precedence over both.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Curation.DefaultSize)
package config
