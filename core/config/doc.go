// Package config provides configuration management for steam-checker.
//
// It utilizes Viper for loading configuration from environment variables and
// godotenv for an optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Steam: API key (STEAM_API_KEY), base URL and request timeout
//   - Storage: S3/MinIO credentials for s3:// games lists
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags of each subsection.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
