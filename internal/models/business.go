package models

import (
	"time"
)

type Business struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	Name               string     `db:"name"`
	Type               *string    `db:"type"`
	RegistrationNumber string     `db:"registration_number"`
	Location           *string    `db:"location"`
	Industry           *string    `db:"industry"`
	YearsOperating     *int       `db:"years_operating"`
	Description        *string    `db:"description"`
	TurnoverRange      *string    `db:"turnover_range"`
	LogoURL            *string    `db:"logo_url"`
	CreatedAt          *time.Time `db:"created_at"`
}

// BusinessWithOwner joins a business with its owner's contact fields for the
// admin listing.
type BusinessWithOwner struct {
	ID                 int64  `db:"id"`
	Name               string `db:"name"`
	RegistrationNumber string `db:"registration_number"`
	OwnerName          string `db:"owner_name"`
	OwnerSurname       string `db:"owner_surname"`
	OwnerEmail         string `db:"owner_email"`
}
