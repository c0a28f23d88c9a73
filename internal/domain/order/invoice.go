package order

import (
	"github.com/xenking/checkout-challenge/internal/domain/customer"
)

// Invoice is an immutable billing/shipping snapshot produced at payment time.
// Both addresses are taken from the order's single address.
type Invoice struct {
	BillingAddress  customer.Address
	ShippingAddress customer.Address
	Order           *Order
}
