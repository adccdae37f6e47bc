package invoice

import (
	"slices"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusPending           PaymentStatus = "Pending"
	StatusPaid              PaymentStatus = "Paid"
	StatusCompleted         PaymentStatus = "Completed"
	StatusRefunded          PaymentStatus = "Refunded"
	StatusPartiallyRefunded PaymentStatus = "Partially Refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsSettled reports whether the charge was collected and nothing has been refunded.
func (s PaymentStatus) IsSettled() bool {
	switch s {
	case StatusPaid, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodDebitCard    PaymentMethod = "Debit Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodMobileWallet PaymentMethod = "Mobile Wallet"
	MethodCash         PaymentMethod = "Cash"
)

var KnownPaymentMethods = []PaymentMethod{
	MethodCreditCard,
	MethodDebitCard,
	MethodBankTransfer,
	MethodMobileWallet,
	MethodCash,
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsKnown() bool {
	return slices.Contains(KnownPaymentMethods, m)
}

// Amount parses a two-decimal money string such as "1399.93"; it panics on malformed input.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
