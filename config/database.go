package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the local SQLite file that backs the key-value storage.
// The path defaults to redcar.db in the working directory.
func ConnectDB() {
	path := os.Getenv("REDCAR_DB_PATH")
	if path == "" {
		path = "redcar.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
