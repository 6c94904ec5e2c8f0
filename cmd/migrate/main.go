package main

import (
	"context"
	"log"
	"os"

	"talentflow-be/internal/model"
	"talentflow-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Sanity-check the DSN with a raw connection before GORM touches it
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	var version string
	if err := conn.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		log.Fatal("Error: Failed to query server version:", err)
	}
	log.Printf("Connected to: %s", version)
	_ = conn.Close(ctx)

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to open GORM connection:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (things AutoMigrate doesn't cover)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Freelancer{},
		&model.Quiz{},
		&model.QuizAttempt{},
		&model.SignableDocument{},
		&model.Activity{},
		&model.Payout{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes the board queries lean on
	log.Println("Step 3: Creating Indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_freelancers_status ON freelancers (status);`,
		`CREATE INDEX IF NOT EXISTS idx_activities_freelancer_created ON activities (freelancer_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_attempts_freelancer ON quiz_attempts (freelancer_id);`,
		`CREATE INDEX IF NOT EXISTS idx_documents_freelancer ON signable_documents (freelancer_id);`,
		`CREATE INDEX IF NOT EXISTS idx_payouts_freelancer ON payouts (freelancer_id);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed successfully via GORM.")
}
