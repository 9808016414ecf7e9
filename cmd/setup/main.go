// Command setup initializes the database schema and seeds the admin
// account from ADMIN_EMAIL / ADMIN_PASSWORD.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/admitly/lead-capture-api/internal/infra/config"
	"github.com/admitly/lead-capture-api/internal/infra/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(20) NOT NULL,
		course VARCHAR(255) NOT NULL,
		college VARCHAR(255) NOT NULL,
		year VARCHAR(10) NOT NULL,
		status VARCHAR(50) DEFAULT 'new' CHECK (status IN ('new', 'contacted', 'qualified', 'lost')),
		sheet_row_id INTEGER,
		reminder_sent BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_email ON leads(email)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_reminder_sent ON leads(reminder_sent)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status_created ON leads(status, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255),
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id SERIAL PRIMARY KEY,
		action VARCHAR(255) NOT NULL,
		lead_id INTEGER,
		details JSONB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("applying schema: %v", err)
		}
	}
	log.Println("schema applied")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1))", email,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("checking admin: %v", err)
	}
	if exists {
		log.Println("admin already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("hashing admin password: %v", err)
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO admins (email, password_hash, name) VALUES (LOWER($1), $2, $3)",
		email, string(hash), os.Getenv("ADMIN_NAME"),
	)
	if err != nil {
		log.Fatalf("seeding admin: %v", err)
	}

	log.Printf("admin %s created", email)
}
