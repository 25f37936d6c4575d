package service

import "errors"

var (
	// ErrAccessDenied means the caller is authenticated but neither owns the
	// target resource nor holds the admin role.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so login never reveals which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
