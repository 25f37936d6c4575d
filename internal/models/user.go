package models

import (
	"time"
)

const (
	RoleEntrepreneur = "entrepreneur"
	RoleAdmin        = "admin"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DeactivatedHash replaces the stored bcrypt hash when an account is
// deactivated. It can never match a real password, so login stays closed.
const DeactivatedHash = "DEACTIVATED"

type User struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Surname      string     `db:"surname"`
	IDNumber     string     `db:"id_number"`
	Email        string     `db:"email"`
	Phone        *string    `db:"phone"`
	PasswordHash string     `db:"password_hash"`
	Hub          *string    `db:"hub"`
	Role         string     `db:"role"`
	Status       string     `db:"status"`
	CreatedAt    *time.Time `db:"created_at"`
}

// EntrepreneurRow is a directory listing row: profile fields plus the count
// of distinct businesses the entrepreneur owns.
type EntrepreneurRow struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Surname       string     `db:"surname"`
	IDNumber      string     `db:"id_number"`
	Email         string     `db:"email"`
	Phone         *string    `db:"phone"`
	Hub           *string    `db:"hub"`
	Status        string     `db:"status"`
	CreatedAt     *time.Time `db:"created_at"`
	BusinessCount int        `db:"business_count"`
}
