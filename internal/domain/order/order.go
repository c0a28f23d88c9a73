package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout-challenge/internal/domain/customer"
	"github.com/xenking/checkout-challenge/internal/domain/product"
)

// Sentinel errors for order construction and lifecycle.
var (
	ErrNilCustomer    = errors.New("customer required")
	ErrInvalidProduct = errors.New("product required")
	ErrEmptyOrder     = errors.New("order has no items")
	ErrOrderClosed    = errors.New("order is closed")
)

// defaultZipcode is used when no shipping address is supplied.
const defaultZipcode = "45678-979"

// OrderItem binds one product into one order. Quantity is always one; the
// line total is the product price.
type OrderItem struct {
	OrderID string
	Product product.Product
}

// Total returns the line total for the item.
func (i OrderItem) Total() decimal.Decimal {
	return i.Product.Price
}

// Order is a customer's cart of items, open until paid. Items are kept in
// insertion order. Orders are not safe for concurrent use.
type Order struct {
	id       string
	customer customer.Customer
	address  customer.Address
	items    []OrderItem
	closedAt *time.Time
	payment  *Payment
}

// Option customizes order construction.
type Option func(*Order)

// WithAddress sets the shipping/billing address for the order.
func WithAddress(addr customer.Address) Option {
	return func(o *Order) {
		o.address = addr
	}
}

// New creates an open Order for the given customer. Without WithAddress the
// order uses the default zipcode.
func New(c customer.Customer, opts ...Option) (*Order, error) {
	if c.ID == "" {
		return nil, ErrNilCustomer
	}

	o := &Order{
		id:       uuid.New().String(),
		customer: c,
		address:  customer.Address{Zipcode: defaultZipcode},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Address returns the shipping/billing address.
func (o *Order) Address() customer.Address {
	return o.address
}

// Items returns a copy of the order items in insertion order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddProduct appends the product to the order as a new item. It rejects
// zero-value products and additions to a closed order.
func (o *Order) AddProduct(p product.Product) error {
	if o.closedAt != nil {
		return ErrOrderClosed
	}
	if p.Kind == "" {
		return ErrInvalidProduct
	}
	o.items = append(o.items, OrderItem{OrderID: o.id, Product: p})
	return nil
}

// TotalAmount sums the line totals of all items. An order with no items
// returns ErrEmptyOrder rather than a silent zero.
func (o *Order) TotalAmount() (decimal.Decimal, error) {
	if len(o.items) == 0 {
		return decimal.Decimal{}, ErrEmptyOrder
	}

	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total, nil
}

// Close stamps the order as closed at the given time. Re-closing overwrites
// the previous timestamp; only Pay guards against repetition.
func (o *Order) Close(closedAt time.Time) {
	o.closedAt = &closedAt
}

// ClosedAt reports when the order was closed, if it was.
func (o *Order) ClosedAt() (time.Time, bool) {
	if o.closedAt == nil {
		return time.Time{}, false
	}
	return *o.closedAt, true
}

// Payment returns the payment that settled the order, or nil while open.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Process runs each item's product fulfillment in insertion order, emitting
// effects to the sink. The first failure aborts the remaining items.
func (o *Order) Process(ctx context.Context, sink product.Sink) error {
	for _, item := range o.items {
		if err := item.Product.Process(ctx, sink); err != nil {
			return errors.Wrapf(err, "process %s", item.Product.Name)
		}
	}
	return nil
}
