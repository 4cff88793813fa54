package services

import "errors"

var (
	// ErrDataRequired is returned when an order lacks type, payment or items.
	ErrDataRequired = errors.New("Data is required.")
	// ErrOrderNotFound covers unknown and malformed order ids.
	ErrOrderNotFound = errors.New("Order not found")

	ErrStaffAuthDisabled  = errors.New("staff auth is disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
