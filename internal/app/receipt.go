package app

import (
	"time"

	"github.com/go-faster/jx"

	"github.com/xenking/checkout-challenge/internal/domain/order"
)

// renderReceipt encodes a settled payment as a JSON receipt.
func renderReceipt(p *order.Payment) []byte {
	o := p.Order()
	inv := p.Invoice()

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("order_id", func(e *jx.Encoder) { e.Str(o.ID()) })
		e.Field("customer", func(e *jx.Encoder) { e.Str(o.Customer().Name) })
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, item := range o.Items() {
					e.Obj(func(e *jx.Encoder) {
						e.Field("product", func(e *jx.Encoder) { e.Str(item.Product.Name) })
						e.Field("kind", func(e *jx.Encoder) { e.Str(string(item.Product.Kind)) })
						e.Field("total", func(e *jx.Encoder) { e.Str(item.Total().StringFixed(2)) })
					})
				}
			})
		})
		e.Field("amount", func(e *jx.Encoder) { e.Str(p.Amount().StringFixed(2)) })
		e.Field("authorization_number", func(e *jx.Encoder) { e.Str(p.AuthorizationNumber()) })
		e.Field("billing_zipcode", func(e *jx.Encoder) { e.Str(inv.BillingAddress.Zipcode) })
		e.Field("shipping_zipcode", func(e *jx.Encoder) { e.Str(inv.ShippingAddress.Zipcode) })
		if paidAt, ok := p.PaidAt(); ok {
			e.Field("paid_at", func(e *jx.Encoder) { e.Str(paidAt.UTC().Format(time.RFC3339)) })
		}
	})
	return e.Bytes()
}
