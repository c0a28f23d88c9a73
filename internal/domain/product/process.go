package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// EffectKind enumerates the fulfillment side effects a product can emit.
type EffectKind string

const (
	// EffectShippingLabel requests a shipping label for a physical item.
	EffectShippingLabel EffectKind = "shipping_label"
	// EffectEmailItemDescription emails the item description to the buyer.
	EffectEmailItemDescription EffectKind = "email_item_description"
	// EffectDiscountVoucher grants a fixed-amount discount voucher.
	EffectDiscountVoucher EffectKind = "discount_voucher"
	// EffectActivateSubscription activates a membership subscription.
	EffectActivateSubscription EffectKind = "activate_subscription"
	// EffectEmailSubscriptionInfo emails subscription details to the buyer.
	EffectEmailSubscriptionInfo EffectKind = "email_subscription_info"
)

// voucherAmount is the fixed discount granted with every digital purchase.
// It is not derived from the product price.
var voucherAmount = decimal.NewFromInt(10)

// Effect describes one fulfillment side effect emitted during processing.
type Effect struct {
	Kind          EffectKind
	Product       string
	Note          string
	VoucherAmount decimal.Decimal
}

// Sink receives fulfillment effects. Implementations must preserve emission
// order; an error aborts processing of the current product.
type Sink interface {
	Emit(ctx context.Context, e Effect) error
}

// Process emits the kind-specific fulfillment effects to the sink:
//
//   - physical: a shipping label
//   - book: a shipping label with a special handling note
//   - digital: the item description by email, then a fixed discount voucher
//   - membership: subscription activation, then the subscription info email
//
// Effects within a kind are emitted in a fixed order. The first sink error
// is returned as-is.
func (p Product) Process(ctx context.Context, sink Sink) error {
	switch p.Kind {
	case KindPhysical:
		return sink.Emit(ctx, Effect{Kind: EffectShippingLabel, Product: p.Name})
	case KindBook:
		return sink.Emit(ctx, Effect{Kind: EffectShippingLabel, Product: p.Name, Note: "special handling"})
	case KindDigital:
		if err := sink.Emit(ctx, Effect{Kind: EffectEmailItemDescription, Product: p.Name}); err != nil {
			return err
		}
		return sink.Emit(ctx, Effect{Kind: EffectDiscountVoucher, Product: p.Name, VoucherAmount: voucherAmount})
	case KindMembership:
		if err := sink.Emit(ctx, Effect{Kind: EffectActivateSubscription, Product: p.Name}); err != nil {
			return err
		}
		return sink.Emit(ctx, Effect{Kind: EffectEmailSubscriptionInfo, Product: p.Name})
	default:
		return errors.Errorf("unsupported product kind: %q", p.Kind)
	}
}
