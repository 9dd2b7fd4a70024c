package domain

import "time"

// PeriodMode controls whether a numbering counter resets on calendar-period change.
type PeriodMode string

const (
	PeriodNone    PeriodMode = "NONE"
	PeriodYearly  PeriodMode = "YEARLY"
	PeriodMonthly PeriodMode = "MONTHLY"
)

// IsValid reports whether the period mode is one of the known values.
func (p PeriodMode) IsValid() bool {
	switch p {
	case PeriodNone, PeriodYearly, PeriodMonthly:
		return true
	}
	return false
}

// PeriodValue renders the calendar-period snapshot for a mode at a given date,
// e.g. "2025" for yearly and "202507" for monthly. Empty for PeriodNone.
func (p PeriodMode) PeriodValue(at time.Time) string {
	switch p {
	case PeriodYearly:
		return at.Format("2006")
	case PeriodMonthly:
		return at.Format("200601")
	}
	return ""
}

// NumberingCounter is one per-key sequence counter row.
// Next holds the value handed out on the following allocation; PeriodValue is
// the snapshot of the last period seen, used to detect rollover.
type NumberingCounter struct {
	Key         string     `json:"key"`
	Next        int64      `json:"next"`
	Period      PeriodMode `json:"period"`
	PeriodValue string     `json:"periodValue"`
	AuditFields
}

// Well-known allocation keys.
const (
	NumberKeyInvoice = "invoice"
	NumberKeyReceipt = "receipt"
	NumberKeyOrder   = "order"
	NumberKeyQuote   = "quote"
)

// NumberFormat pairs a display template with the reset behavior of the
// counter behind it, e.g. {Template: "INV-{yyyy}-{0000}", Mode: PeriodYearly}.
type NumberFormat struct {
	Template string
	Mode     PeriodMode
}
