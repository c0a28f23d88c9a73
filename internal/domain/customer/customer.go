package customer

import (
	"time"

	"github.com/go-faster/errors"
)

// Sentinel errors for customer and address construction.
var (
	ErrEmptyZipcode = errors.New("zipcode required")
	ErrEmptyID      = errors.New("customer id required")
	ErrEmptyName    = errors.New("customer name required")
)

// Address is an immutable postal address value.
type Address struct {
	Zipcode string
}

// NewAddress creates an Address, rejecting an empty zipcode.
func NewAddress(zipcode string) (Address, error) {
	if zipcode == "" {
		return Address{}, ErrEmptyZipcode
	}
	return Address{Zipcode: zipcode}, nil
}

// Customer is an immutable identity value.
type Customer struct {
	ID        string
	Name      string
	BirthDate time.Time
}

// New creates a Customer, rejecting empty id or name.
func New(id, name string, birthDate time.Time) (Customer, error) {
	if id == "" {
		return Customer{}, ErrEmptyID
	}
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	return Customer{ID: id, Name: name, BirthDate: birthDate}, nil
}
