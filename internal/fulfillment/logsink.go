package fulfillment

import (
	"context"

	"go.uber.org/zap"

	"github.com/xenking/checkout-challenge/internal/domain/product"
)

// LogSink is a product.Sink that writes each effect as a structured log
// entry. It stands in for the real label/email/voucher integrations.
type LogSink struct {
	lg *zap.Logger
}

// NewLogSink creates a LogSink writing to the given logger.
func NewLogSink(lg *zap.Logger) *LogSink {
	return &LogSink{lg: lg}
}

// Emit logs the effect and never fails.
func (s *LogSink) Emit(_ context.Context, e product.Effect) error {
	fields := []zap.Field{
		zap.String("effect", string(e.Kind)),
		zap.String("product", e.Product),
	}
	if e.Note != "" {
		fields = append(fields, zap.String("note", e.Note))
	}
	if !e.VoucherAmount.IsZero() {
		fields = append(fields, zap.String("voucher_amount", e.VoucherAmount.StringFixed(2)))
	}

	s.lg.Info("Fulfillment effect", fields...)
	return nil
}
