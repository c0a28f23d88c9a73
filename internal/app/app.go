package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/checkout-challenge/internal/domain/customer"
	"github.com/xenking/checkout-challenge/internal/domain/order"
	"github.com/xenking/checkout-challenge/internal/domain/product"
	"github.com/xenking/checkout-challenge/internal/fulfillment"
)

// Run wires and exercises the whole checkout flow: build a customer and an
// order, add one product of each kind, process fulfillment through the log
// sink, settle the payment, and print the receipt. It is the single wiring
// point for the demo.
func Run(ctx context.Context, lg *zap.Logger, _ *app.Telemetry, cfg *Config) error {
	birthDate, err := time.Parse("2006-01-02", cfg.CustomerBirthDate)
	if err != nil {
		return errors.Wrap(err, "parse customer birth date")
	}

	cust, err := customer.New(cfg.CustomerID, cfg.CustomerName, birthDate)
	if err != nil {
		return errors.Wrap(err, "create customer")
	}

	addr, err := customer.NewAddress(cfg.Zipcode)
	if err != nil {
		return errors.Wrap(err, "create address")
	}

	o, err := order.New(cust, order.WithAddress(addr))
	if err != nil {
		return errors.Wrap(err, "create order")
	}
	lg.Info("Order created",
		zap.String("order_id", o.ID()),
		zap.String("customer", cust.Name),
		zap.String("zipcode", addr.Zipcode),
	)

	for _, item := range []struct {
		kind  product.Kind
		name  string
		price string
	}{
		{product.KindPhysical, "Coffee mug", "12.50"},
		{product.KindBook, "Awesome book", "50.00"},
		{product.KindDigital, "Movie soundtrack", "30.00"},
		{product.KindMembership, "Gold membership", "9.90"},
	} {
		p, err := product.New(item.kind, item.name, decimal.RequireFromString(item.price))
		if err != nil {
			return errors.Wrapf(err, "create product %s", item.name)
		}
		if err := o.AddProduct(p); err != nil {
			return errors.Wrapf(err, "add product %s", item.name)
		}
	}

	total, err := o.TotalAmount()
	if err != nil {
		return errors.Wrap(err, "total amount")
	}
	lg.Info("Cart ready",
		zap.Int("items", len(o.Items())),
		zap.String("total", total.StringFixed(2)),
	)

	if err := o.Process(ctx, fulfillment.NewLogSink(lg)); err != nil {
		return errors.Wrap(err, "process order")
	}

	payment, err := order.NewPayment(o, order.FetchCreditCardByHashed("43567890-987654367"))
	if err != nil {
		return errors.Wrap(err, "create payment")
	}
	if err := payment.Pay(); err != nil {
		return errors.Wrap(err, "pay")
	}
	lg.Info("Payment settled",
		zap.String("authorization", payment.AuthorizationNumber()),
		zap.String("amount", payment.Amount().StringFixed(2)),
	)

	fmt.Println(string(renderReceipt(payment)))
	return nil
}
