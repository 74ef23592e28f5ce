package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brickfolio/figure-catalog/models"
)

// ConnectToDB opens the Postgres connection from the DATABASE_* environment
// variables and migrates the catalog schema. The connection is opened
// through database/sql so repository code can inspect driver errors.
func ConnectToDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DATABASE_HOST", "localhost"),
		getenv("DATABASE_PORT", "5432"),
		getenv("DATABASE_USER", "postgres"),
		os.Getenv("DATABASE_PASSWORD"),
		getenv("DATABASE_NAME", "catalog"),
		getenv("DATABASE_SSLMODE", "disable"),
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Figure{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
