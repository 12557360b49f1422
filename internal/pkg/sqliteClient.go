package client

import (
	"log"

	"messenger-relay/internal/domain/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SqliteDB opens the local turn-log database and ensures the schema exists.
func SqliteDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening sqlite database at %s: %v", path, err)
	}

	if err := db.AutoMigrate(&entities.Turn{}); err != nil {
		log.Fatalf("error migrating sqlite schema: %v", err)
	}

	return db
}
