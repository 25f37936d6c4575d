package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrUserExists     = errors.New("user with this email or ID number already exists")
	ErrBusinessExists = errors.New("business with this registration number already exists")
	ErrPaymentExists  = errors.New("payment record already exists for this month/year")
)
