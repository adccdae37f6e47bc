package commands

import (
	"royal-stay/internal/domain/service"
	"royal-stay/internal/infra"
	"royal-stay/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Input shapes are checked with struct tags before any repository is touched.
// Date and amount rules stay in the domain so their sentinel errors reach the caller.

type CreateBookingInput struct {
	GuestID    int    `validate:"required,gt=0"`
	RoomNumber int    `validate:"required,gt=0"`
	CheckIn    string `validate:"required"`
	CheckOut   string `validate:"required"`
}

type ChangeDatesInput struct {
	BookingID int    `validate:"required,gt=0"`
	CheckIn   string `validate:"required"`
	CheckOut  string `validate:"required"`
}

type IssueInvoiceInput struct {
	BookingID       int     `validate:"required,gt=0"`
	DiscountPercent float64 `validate:"gte=0,lte=100"`
	PaymentMethod   string  `validate:"required"`
}

type EnrollInput struct {
	GuestID     int      `validate:"required,gt=0"`
	Points      int      `validate:"gte=0"`
	BaseRewards []string `validate:"dive,required"`
}

type RequestServiceInput struct {
	GuestID     int    `validate:"required,gt=0"`
	ServiceType string `validate:"required"`
	Status      *string
	Premium     *service.PremiumDetails
}

type SubmitFeedbackInput struct {
	GuestID  int     `validate:"required,gt=0"`
	Rating   float64
	Comments string  `validate:"max=1000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	return nil
}

// notFound translates a repository miss into the given domain sentinel.
func notFound(err error, sentinel error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Newf(sentinel, format, args...)
	}
	return errs.Wrapf(err, format, args...)
}
