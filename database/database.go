package database

import (
	"log"

	"potholetrack/config"
	"potholetrack/repositories"
)

// Connect picks the persistence backend: PostgreSQL when DATABASE_URL
// is set, otherwise the local JSON data file.
func Connect() (*repositories.Store, error) {
	if dbURL := config.GetEnv("DATABASE_URL", ""); dbURL != "" {
		return NewGormStore(dbURL)
	}

	path := config.GetEnv("DATA_FILE", "data.json")
	log.Printf("⚠️ No DATABASE_URL set, using local data file %s", path)
	return NewFileStore(path)
}
