package commands

import (
	"context"
	"log/slog"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/domain/feedback"
	"royal-stay/internal/domain/service"
	"royal-stay/internal/pkg/clock"
	"royal-stay/internal/pkg/errs"
	"royal-stay/internal/pkg/ptr"
	"royal-stay/internal/usecase/shared"
)

type ServiceCommands interface {
	Request(ctx context.Context, in RequestServiceInput) (*service.Request, error)
	Complete(ctx context.Context, requestID int) (*service.Request, error)
	SubmitFeedback(ctx context.Context, in SubmitFeedbackInput) (*feedback.Feedback, error)
}

type serviceCommandsImpl struct {
	store  shared.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewServiceCommands(store shared.Store, clk clock.Clock, logger *slog.Logger) ServiceCommands {
	return &serviceCommandsImpl{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Request stamps the request with the current time. A nil status means pending.
func (c *serviceCommandsImpl) Request(ctx context.Context, in RequestServiceInput) (*service.Request, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := c.store.Guests().FindByID(ctx, in.GuestID); err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", in.GuestID)
	}

	status := ptr.Or(in.Status, service.StatusPending)
	id := c.store.ServiceRequests().NextID(ctx)
	at := calendar.TimestampOf(c.clock.Now()).String()

	var (
		req *service.Request
		err error
	)
	if in.Premium != nil {
		req, err = service.NewPremiumRequest(id, in.ServiceType, status, in.GuestID, at, *in.Premium)
	} else {
		req, err = service.NewRequest(id, in.ServiceType, status, in.GuestID, at)
	}
	if err != nil {
		return nil, err
	}
	if err := c.store.ServiceRequests().Create(ctx, req); err != nil {
		return nil, errs.Wrap(err, "failed to store service request")
	}

	c.logger.InfoContext(ctx, "Service requested",
		slog.Int("request_id", req.ID()),
		slog.Int("guest_id", req.GuestID()),
		slog.String("service_type", req.ServiceType()),
		slog.Bool("premium", req.IsPremium()),
	)
	return req, nil
}

func (c *serviceCommandsImpl) Complete(ctx context.Context, requestID int) (*service.Request, error) {
	req, err := c.store.ServiceRequests().FindByID(ctx, requestID)
	if err != nil {
		return nil, notFound(err, errs.ErrServiceRequestNotFound, "request %d", requestID)
	}
	req.MarkAsCompleted()
	if err := c.store.ServiceRequests().Update(ctx, req); err != nil {
		return nil, errs.Wrap(err, "failed to store service request")
	}

	c.logger.InfoContext(ctx, "Service completed", slog.Int("request_id", req.ID()))
	return req, nil
}

func (c *serviceCommandsImpl) SubmitFeedback(ctx context.Context, in SubmitFeedbackInput) (*feedback.Feedback, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := c.store.Guests().FindByID(ctx, in.GuestID); err != nil {
		return nil, notFound(err, errs.ErrGuestNotFound, "guest %d", in.GuestID)
	}

	today := calendar.DateOf(c.clock.Now()).String()
	f, err := feedback.NewFeedback(c.store.Feedback().NextID(ctx), in.Rating, in.Comments, in.GuestID, today)
	if err != nil {
		return nil, err
	}
	if err := c.store.Feedback().Create(ctx, f); err != nil {
		return nil, errs.Wrap(err, "failed to store feedback")
	}

	c.logger.InfoContext(ctx, "Feedback received",
		slog.Int("feedback_id", f.ID()),
		slog.Int("guest_id", f.GuestID()),
		slog.Float64("rating", f.Rating()),
	)
	return f, nil
}
