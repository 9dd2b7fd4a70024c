// Package money implements the net/tax/gross split arithmetic on integer
// minor units (cents). Rounding is half away from zero.
package money

import (
	"fmt"

	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount is a net/tax/gross triple in minor units.
// Invariant: GrossCents == NetCents + TaxCents, all non-negative.
type Amount struct {
	NetCents   int64 `json:"netCents"`
	TaxCents   int64 `json:"taxCents"`
	GrossCents int64 `json:"grossCents"`
}

// Split derives the net and tax legs from a gross amount and a tax rate.
// A nil rate means not VAT-relevant: tax is zero and net equals gross.
// The tax leg is always gross minus net, never rounded independently, so the
// triple invariant holds exactly.
func Split(grossCents int64, ratePercent *decimal.Decimal) (Amount, error) {
	if grossCents < 0 {
		return Amount{}, fmt.Errorf("%w: gross amount must not be negative, got %d", apperrors.ErrValidation, grossCents)
	}
	if ratePercent == nil || ratePercent.IsZero() {
		return Amount{NetCents: grossCents, TaxCents: 0, GrossCents: grossCents}, nil
	}
	if ratePercent.IsNegative() {
		return Amount{}, fmt.Errorf("%w: tax rate must not be negative, got %s", apperrors.ErrValidation, ratePercent)
	}

	// net = gross * 100 / (100 + rate), rounded half away from zero
	gross := decimal.NewFromInt(grossCents)
	net := gross.Mul(hundred).Div(hundred.Add(*ratePercent)).Round(0).IntPart()

	return Amount{
		NetCents:   net,
		TaxCents:   grossCents - net,
		GrossCents: grossCents,
	}, nil
}

// Combine is the inverse of Split for net-first entry: the tax leg is rounded
// from the net amount and the gross leg is net plus tax.
func Combine(netCents int64, ratePercent *decimal.Decimal) (Amount, error) {
	if netCents < 0 {
		return Amount{}, fmt.Errorf("%w: net amount must not be negative, got %d", apperrors.ErrValidation, netCents)
	}
	if ratePercent == nil || ratePercent.IsZero() {
		return Amount{NetCents: netCents, TaxCents: 0, GrossCents: netCents}, nil
	}
	if ratePercent.IsNegative() {
		return Amount{}, fmt.Errorf("%w: tax rate must not be negative, got %s", apperrors.ErrValidation, ratePercent)
	}

	tax := decimal.NewFromInt(netCents).Mul(*ratePercent).Div(hundred).Round(0).IntPart()

	return Amount{
		NetCents:   netCents,
		TaxCents:   tax,
		GrossCents: netCents + tax,
	}, nil
}
