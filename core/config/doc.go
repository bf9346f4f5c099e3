// Package config loads the application settings.
//
// Values come from environment variables, optionally seeded from a .env file
// through godotenv. Every leaf field declares its key with a mapstructure tag
// and its fallback with a default tag; nested keys map to upper case
// variables joined by underscores (discord.token is DISCORD_TOKEN).
//
// Sections:
//   - Server: HTTP API listener and API key
//   - Discord: bot token, command prefix, request timeout, cooldown
//   - Storage: S3/MinIO archive of applied configurations
//   - Database: MySQL history of reconcile runs
//   - Log: level and format
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
