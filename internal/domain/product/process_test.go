package product

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records effects in emission order, optionally failing after a
// given number of emits.
type captureSink struct {
	effects  []Effect
	failAt   int // 1-based emit index to fail at, 0 disables
	emitErr  error
	emitSeen int
}

func (s *captureSink) Emit(_ context.Context, e Effect) error {
	s.emitSeen++
	if s.failAt > 0 && s.emitSeen >= s.failAt {
		return s.emitErr
	}
	s.effects = append(s.effects, e)
	return nil
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want []Effect
	}{
		{
			name: "physical emits shipping label",
			kind: KindPhysical,
			want: []Effect{
				{Kind: EffectShippingLabel, Product: "item"},
			},
		},
		{
			name: "book emits special handling shipping label",
			kind: KindBook,
			want: []Effect{
				{Kind: EffectShippingLabel, Product: "item", Note: "special handling"},
			},
		},
		{
			name: "digital emails description then grants voucher",
			kind: KindDigital,
			want: []Effect{
				{Kind: EffectEmailItemDescription, Product: "item"},
				{Kind: EffectDiscountVoucher, Product: "item", VoucherAmount: decimal.NewFromInt(10)},
			},
		},
		{
			name: "membership activates then emails info",
			kind: KindMembership,
			want: []Effect{
				{Kind: EffectActivateSubscription, Product: "item"},
				{Kind: EffectEmailSubscriptionInfo, Product: "item"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.kind, "item", decimal.NewFromInt(10))
			require.NoError(t, err)

			sink := &captureSink{}
			require.NoError(t, p.Process(context.Background(), sink))

			require.Len(t, sink.effects, len(tt.want))
			for i, want := range tt.want {
				got := sink.effects[i]
				assert.Equal(t, want.Kind, got.Kind)
				assert.Equal(t, want.Product, got.Product)
				assert.Equal(t, want.Note, got.Note)
				assert.True(t, want.VoucherAmount.Equal(got.VoucherAmount),
					"effect %d: expected voucher %s, got %s", i, want.VoucherAmount, got.VoucherAmount)
			}
		})
	}
}

func TestProcess_SinkErrorAborts(t *testing.T) {
	p, err := New(KindDigital, "Soundtrack", decimal.NewFromInt(30))
	require.NoError(t, err)

	sinkErr := errors.New("mailer down")
	sink := &captureSink{failAt: 2, emitErr: sinkErr}

	err = p.Process(context.Background(), sink)
	require.ErrorIs(t, err, sinkErr)

	// The first effect got through, the voucher never did.
	require.Len(t, sink.effects, 1)
	assert.Equal(t, EffectEmailItemDescription, sink.effects[0].Kind)
}

func TestProcess_ZeroProduct(t *testing.T) {
	var p Product

	err := p.Process(context.Background(), &captureSink{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported product kind")
}
