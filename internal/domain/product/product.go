package product

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Kind enumerates the supported product variants. The set is closed: each
// kind has its own fulfillment behaviour in Process.
type Kind string

const (
	// KindPhysical is a physical good shipped with a standard label.
	KindPhysical Kind = "physical"
	// KindBook is a physical book shipped with a special handling label.
	KindBook Kind = "book"
	// KindDigital is a downloadable item delivered by email with a voucher.
	KindDigital Kind = "digital"
	// KindMembership is a subscription activated on purchase.
	KindMembership Kind = "membership"
)

// Sentinel errors for product construction.
var (
	ErrEmptyName     = errors.New("product name required")
	ErrNegativePrice = errors.New("price must not be negative")
)

// UnknownKindError indicates a product kind outside the supported set.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown product kind %q", e.Kind)
}

// Product represents a catalog item available for purchase. The variant is
// fixed at creation.
type Product struct {
	Kind  Kind
	Name  string
	Price decimal.Decimal
}

// New creates a Product, rejecting unknown kinds, empty names, and negative
// prices.
func New(kind Kind, name string, price decimal.Decimal) (Product, error) {
	switch kind {
	case KindPhysical, KindBook, KindDigital, KindMembership:
	default:
		return Product{}, &UnknownKindError{Kind: kind}
	}
	if name == "" {
		return Product{}, ErrEmptyName
	}
	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	return Product{Kind: kind, Name: name, Price: price}, nil
}
