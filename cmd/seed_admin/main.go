// Command seed_admin creates or repairs the administrator account.
// Useful for bootstrapping a fresh database or resetting a lost password.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"entrepreneur-tracker/internal/lib/config"
	"entrepreneur-tracker/internal/lib/password"
	"entrepreneur-tracker/internal/lib/sl"
	"entrepreneur-tracker/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	var (
		email    string
		pass     string
		name     string
		surname  string
		idNumber string
	)
	flag.StringVar(&email, "email", "admin@example.com", "admin email")
	flag.StringVar(&pass, "password", "", "admin password (required)")
	flag.StringVar(&name, "name", "System", "admin first name")
	flag.StringVar(&surname, "surname", "Administrator", "admin surname")
	flag.StringVar(&idNumber, "id-number", "ADMIN-0001", "admin identity number")

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	// MustLoad registers the -config flag and parses everything at once.
	cfg := config.MustLoad()

	if pass == "" {
		log.Error("password flag is required")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	hash, err := password.Hash(pass)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		os.Exit(1)
	}

	const query = `
		INSERT INTO users (name, surname, id_number, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role, status = EXCLUDED.status
		RETURNING id`

	var id int64
	err = db.QueryRowx(query, name, surname, idNumber, email, hash, models.RoleAdmin, models.StatusActive).Scan(&id)
	if err != nil {
		log.Error("failed to seed admin", sl.Err(err))
		os.Exit(1)
	}

	fmt.Printf("admin ready: id=%d email=%s\n", id, email)
}
