package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// German VAT rates used to partition the settlement buckets.
var (
	VATRateStandard = decimal.NewFromInt(19)
	VATRateReduced  = decimal.NewFromInt(7)
)

// RangeTotals is the normalized shape every aggregation source is reduced to.
// All values are non-negative integer minor units.
type RangeTotals struct {
	IncomeGrossCents  int64 `json:"incomeGrossCents"`
	ExpenseGrossCents int64 `json:"expenseGrossCents"`
	IncomeNetCents    int64 `json:"incomeNetCents"`
	ExpenseNetCents   int64 `json:"expenseNetCents"`
}

// Add accumulates another totals value into the receiver.
func (t *RangeTotals) Add(o RangeTotals) {
	t.IncomeGrossCents += o.IncomeGrossCents
	t.ExpenseGrossCents += o.ExpenseGrossCents
	t.IncomeNetCents += o.IncomeNetCents
	t.ExpenseNetCents += o.ExpenseNetCents
}

// VATBucket is the summed net and VAT legs of one (kind, rate) partition.
type VATBucket struct {
	NetCents int64 `json:"netCents"`
	VATCents int64 `json:"vatCents"`
}

// VATSettlement is the month-to-date VAT position, partitioned by kind and
// rate. NetVATCents is (income VAT) minus (expense VAT) and may be negative,
// which is a refund position.
type VATSettlement struct {
	IncomeStandard  VATBucket `json:"incomeStandard"`
	IncomeReduced   VATBucket `json:"incomeReduced"`
	ExpenseStandard VATBucket `json:"expenseStandard"`
	ExpenseReduced  VATBucket `json:"expenseReduced"`
	NetVATCents     int64     `json:"netVATCents"`
}

// AnnualStatement is the simplified cash-basis annual statement (EUR-style):
// net income across all sources minus net expense from ledger entries, for one
// calendar year. An approximation, not authoritative tax output.
type AnnualStatement struct {
	Year            int   `json:"year"`
	IncomeNetCents  int64 `json:"incomeNetCents"`
	ExpenseNetCents int64 `json:"expenseNetCents"`
	ResultCents     int64 `json:"resultCents"`
}

// PeriodReport is the full dashboard payload. VATSettlement is nil when the
// account runs under the small-business VAT exemption.
type PeriodReport struct {
	AsOf          time.Time       `json:"asOf"`
	Today         RangeTotals     `json:"today"`
	Last7Days     RangeTotals     `json:"last7Days"`
	Last30Days    RangeTotals     `json:"last30Days"`
	MonthToDate   RangeTotals     `json:"monthToDate"`
	VATSettlement *VATSettlement  `json:"vatSettlement,omitempty"`
	Annual        AnnualStatement `json:"annual"`
}

// VATBucketRow is one raw (kind, rate) group as summed by the repository,
// before the service folds rows into the fixed settlement buckets.
type VATBucketRow struct {
	Kind        EntryKind       `json:"kind"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	NetCents    int64           `json:"netCents"`
	VATCents    int64           `json:"vatCents"`
}
