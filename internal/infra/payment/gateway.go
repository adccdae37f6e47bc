package payment

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/invoice"
)

// AlwaysApprove stands in for a real processor: every charge succeeds.
type AlwaysApprove struct {
	logger *slog.Logger
}

func NewAlwaysApprove(logger *slog.Logger) *AlwaysApprove {
	return &AlwaysApprove{logger: logger}
}

var _ invoice.Gateway = (*AlwaysApprove)(nil)

func (g *AlwaysApprove) Charge(ctx context.Context, req invoice.ChargeRequest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	g.logger.DebugContext(ctx, "Charge approved",
		slog.Int("invoice_id", req.InvoiceID),
		slog.Int("booking_id", req.BookingID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("method", req.Method.String()),
	)
	return true, nil
}
