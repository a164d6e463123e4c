package Models

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// Migrate creates or updates the schema. Templates first, daily tasks
// and summaries depend on them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&TaskTemplate{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&DailyTask{},
		&DaySummary{},
	)
}
