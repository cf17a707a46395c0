//go:build ignore

// Promotes an existing user to the admin role.
//
// Usage: go run scripts/promote_admin.go <username>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/promote_admin.go <username>")
	}
	username := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "taskflow"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	result := db.Exec("UPDATE users SET role = 'admin' WHERE username = ?", username)
	if result.Error != nil {
		log.Fatal("Failed to update role:", result.Error)
	}
	if result.RowsAffected == 0 {
		log.Fatalf("No user found with username %q", username)
	}

	fmt.Printf("User %q is now an admin\n", username)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
