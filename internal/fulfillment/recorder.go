package fulfillment

import (
	"context"

	"github.com/xenking/checkout-challenge/internal/domain/product"
)

// Recorder is a product.Sink that captures effects in emission order. It is
// meant for tests and demo inspection; it never fails.
type Recorder struct {
	effects []product.Effect
}

// Emit appends the effect to the recorded sequence.
func (r *Recorder) Emit(_ context.Context, e product.Effect) error {
	r.effects = append(r.effects, e)
	return nil
}

// Effects returns a copy of the captured effects in emission order.
func (r *Recorder) Effects() []product.Effect {
	effects := make([]product.Effect, len(r.effects))
	copy(effects, r.effects)
	return effects
}
