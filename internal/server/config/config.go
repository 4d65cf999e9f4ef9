// Package config loads backend configuration from the environment. A .env
// file in the working directory is read first when present; real environment
// variables win over it.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the userdesk backend.
//
// Fields:
//   - Addr: bind address of the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). When empty the backend runs on the
//     in-memory repository, which is the development default.
type Config struct {
	Addr        string
	DatabaseDSN string
}

func Load() *Config {
	_ = godotenv.Load()

	addr := os.Getenv("USERDESK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return &Config{
		Addr:        addr,
		DatabaseDSN: os.Getenv("USERDESK_DATABASE_DSN"),
	}
}
