package invoice

import (
	"context"

	"royal-stay/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrDiscountExceedsTotal = errs.ErrDiscountExceedsTotal

//go:generate mockgen -source=entity.go -destination=../../../tests/mock/invoice/gateway_mock.go -package=invoicemock

// Gateway is the external payment collaborator. It only reports success or failure;
// updating the payment status is left to the caller.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (bool, error)
}

type ChargeRequest struct {
	InvoiceID int
	BookingID int
	Amount    decimal.Decimal
	Method    PaymentMethod
}

type Invoice struct {
	id            int
	bookingID     int
	totalAmount   decimal.Decimal
	discount      decimal.Decimal
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
}

func NewInvoice(
	id int,
	totalAmount, discount decimal.Decimal,
	method PaymentMethod,
	bookingID int,
	status PaymentStatus,
) *Invoice {
	return &Invoice{
		id:            id,
		bookingID:     bookingID,
		totalAmount:   totalAmount,
		discount:      discount,
		paymentMethod: method,
		paymentStatus: status,
	}
}

// NetTotal is gross minus discount, unclamped: a discount above the gross yields a negative total.
func (i *Invoice) NetTotal() decimal.Decimal {
	return i.totalAmount.Sub(i.discount)
}

// ValidateDiscount is an explicit check; NewInvoice and SetDiscount do not call it.
func (i *Invoice) ValidateDiscount() error {
	if i.discount.GreaterThan(i.totalAmount) {
		return errs.Newf(ErrDiscountExceedsTotal, "invoice #%d: discount %s, total %s",
			i.id, i.discount.StringFixed(2), i.totalAmount.StringFixed(2))
	}
	return nil
}

// ProcessPayment charges the net total through gw. The invoice itself is not modified.
func (i *Invoice) ProcessPayment(ctx context.Context, gw Gateway) (bool, error) {
	ok, err := gw.Charge(ctx, ChargeRequest{
		InvoiceID: i.id,
		BookingID: i.bookingID,
		Amount:    i.NetTotal(),
		Method:    i.paymentMethod,
	})
	if err != nil {
		return false, errs.Wrapf(err, "process payment for invoice #%d", i.id)
	}
	return ok, nil
}

func (i *Invoice) SetDiscount(discount decimal.Decimal)  { i.discount = discount }
func (i *Invoice) SetPaymentStatus(status PaymentStatus) { i.paymentStatus = status }

func (i *Invoice) ID() int                      { return i.id }
func (i *Invoice) BookingID() int               { return i.bookingID }
func (i *Invoice) TotalAmount() decimal.Decimal { return i.totalAmount }
func (i *Invoice) Discount() decimal.Decimal    { return i.discount }
func (i *Invoice) PaymentMethod() PaymentMethod { return i.paymentMethod }
func (i *Invoice) PaymentStatus() PaymentStatus { return i.paymentStatus }
