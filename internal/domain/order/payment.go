package order

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors for payment construction and settlement.
var (
	ErrNilOrder    = errors.New("order required")
	ErrAlreadyPaid = errors.New("payment already settled")
)

// Payment records the settlement of an order's total. Settling produces an
// Invoice and closes the order.
type Payment struct {
	order  *Order
	method *CreditCard

	authorizationNumber string
	amount              decimal.Decimal
	invoice             *Invoice
	paidAt              *time.Time

	now       func() time.Time
	authorize func() string
}

// NewPayment creates an unsettled payment for the given order. The method
// may be nil; card handling is a placeholder.
func NewPayment(o *Order, method *CreditCard) (*Payment, error) {
	if o == nil {
		return nil, ErrNilOrder
	}
	return &Payment{
		order:     o,
		method:    method,
		now:       time.Now,
		authorize: uuid.NewString,
	}, nil
}

// Pay settles the payment: it recomputes the amount from the order total,
// stamps an authorization number, snapshots an invoice from the order's
// address, and closes the order. A second call returns ErrAlreadyPaid.
func (p *Payment) Pay() error {
	if p.Paid() {
		return ErrAlreadyPaid
	}

	total, err := p.order.TotalAmount()
	if err != nil {
		return errors.Wrap(err, "total amount")
	}

	p.amount = total
	p.authorizationNumber = p.authorize()
	p.invoice = &Invoice{
		BillingAddress:  p.order.address,
		ShippingAddress: p.order.address,
		Order:           p.order,
	}

	paidAt := p.now()
	p.paidAt = &paidAt

	p.order.Close(paidAt)
	p.order.payment = p
	return nil
}

// Paid reports whether the payment has been settled.
func (p *Payment) Paid() bool {
	return p.paidAt != nil
}

// Order returns the order this payment settles.
func (p *Payment) Order() *Order {
	return p.order
}

// Method returns the payment method, which may be nil.
func (p *Payment) Method() *CreditCard {
	return p.method
}

// AuthorizationNumber returns the settlement authorization, empty until paid.
func (p *Payment) AuthorizationNumber() string {
	return p.authorizationNumber
}

// Amount returns the settled amount, zero until paid.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Invoice returns the invoice snapshot, nil until paid.
func (p *Payment) Invoice() *Invoice {
	return p.invoice
}

// PaidAt reports when the payment was settled, if it was.
func (p *Payment) PaidAt() (time.Time, bool) {
	if p.paidAt == nil {
		return time.Time{}, false
	}
	return *p.paidAt, true
}
