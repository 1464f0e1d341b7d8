package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Msparihar/todo/pkg/config"
)

// Wipes all application data. Development use only.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Password,
		cfg.Database.DBName, cfg.Database.Port, cfg.Database.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Order matters: join table first, then fact tables, then owners.
	for _, table := range []string{"todo_tags", "todos", "tags", "projects", "users"} {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			log.Fatalf("Failed to clear %s: %v", table, result.Error)
		}
		fmt.Printf("Cleared %s (%d rows)\n", table, result.RowsAffected)
	}

	fmt.Println("Done! All data cleared.")
}
