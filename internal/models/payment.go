package models

import (
	"time"
)

const (
	PaymentPending = "pending"
	PaymentUnpaid  = "unpaid"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

type Payment struct {
	ID         int64      `db:"id"`
	BusinessID int64      `db:"business_id"`
	Month      int        `db:"month"`
	Year       int        `db:"year"`
	Status     string     `db:"status"`
	Notes      *string    `db:"notes"`
	CreatedAt  *time.Time `db:"created_at"`
}

// PaymentWithBusiness joins a payment with its business and owner for the
// admin payment list and the entrepreneur dashboard.
type PaymentWithBusiness struct {
	ID                 int64      `db:"id"`
	BusinessID         int64      `db:"business_id"`
	Month              int        `db:"month"`
	Year               int        `db:"year"`
	Status             string     `db:"status"`
	Notes              *string    `db:"notes"`
	CreatedAt          *time.Time `db:"created_at"`
	BusinessName       string     `db:"business_name"`
	RegistrationNumber *string    `db:"registration_number"`
	OwnerName          *string    `db:"owner_name"`
	OwnerSurname       *string    `db:"owner_surname"`
	OwnerEmail         *string    `db:"owner_email"`
}
