// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults are declared next to each field
// with a `default:"..."` struct tag and registered by reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and pagination limits (SERVER_PORT, SERVER_DEFAULT_LIMIT, SERVER_MAX_LIMIT)
//   - Database: driver (postgres, mysql, sqlite) and connection details
//   - Upstream: remote catalog base URL, list path, timeout and user agent
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//   - Cache: TTL of the /debug/list page cache
//
// Nested keys map to upper-case environment variables joined with underscores,
// e.g. database.timeout_seconds is read from DATABASE_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
