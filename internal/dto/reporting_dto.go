package dto

import (
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// RangeTotalsResponse is the normalized income/expense totals for one window.
type RangeTotalsResponse struct {
	IncomeGrossCents  int64 `json:"incomeGrossCents"`
	ExpenseGrossCents int64 `json:"expenseGrossCents"`
	IncomeNetCents    int64 `json:"incomeNetCents"`
	ExpenseNetCents   int64 `json:"expenseNetCents"`
}

// VATBucketResponse is one summed (kind, rate) settlement bucket.
type VATBucketResponse struct {
	NetCents int64 `json:"netCents"`
	VATCents int64 `json:"vatCents"`
}

// VATSettlementResponse is the month-to-date VAT position. Omitted entirely
// when the account runs under the small-business exemption.
type VATSettlementResponse struct {
	IncomeStandard  VATBucketResponse `json:"incomeStandard"`
	IncomeReduced   VATBucketResponse `json:"incomeReduced"`
	ExpenseStandard VATBucketResponse `json:"expenseStandard"`
	ExpenseReduced  VATBucketResponse `json:"expenseReduced"`
	NetVATCents     int64             `json:"netVATCents"`
}

// AnnualStatementResponse is the simplified cash-basis annual statement.
type AnnualStatementResponse struct {
	Year            int   `json:"year"`
	IncomeNetCents  int64 `json:"incomeNetCents"`
	ExpenseNetCents int64 `json:"expenseNetCents"`
	ResultCents     int64 `json:"resultCents"`
}

// PeriodReportResponse is the full dashboard summary payload.
type PeriodReportResponse struct {
	AsOf          string                  `json:"asOf"`
	Today         RangeTotalsResponse     `json:"today"`
	Last7Days     RangeTotalsResponse     `json:"last7Days"`
	Last30Days    RangeTotalsResponse     `json:"last30Days"`
	MonthToDate   RangeTotalsResponse     `json:"monthToDate"`
	VATSettlement *VATSettlementResponse  `json:"vatSettlement,omitempty"`
	Annual        AnnualStatementResponse `json:"annual"`
}

func toRangeTotalsResponse(t domain.RangeTotals) RangeTotalsResponse {
	return RangeTotalsResponse{
		IncomeGrossCents:  t.IncomeGrossCents,
		ExpenseGrossCents: t.ExpenseGrossCents,
		IncomeNetCents:    t.IncomeNetCents,
		ExpenseNetCents:   t.ExpenseNetCents,
	}
}

// ToPeriodReportResponse converts a domain PeriodReport to its response DTO.
func ToPeriodReportResponse(r *domain.PeriodReport) PeriodReportResponse {
	resp := PeriodReportResponse{
		AsOf:        r.AsOf.Format(DateLayout),
		Today:       toRangeTotalsResponse(r.Today),
		Last7Days:   toRangeTotalsResponse(r.Last7Days),
		Last30Days:  toRangeTotalsResponse(r.Last30Days),
		MonthToDate: toRangeTotalsResponse(r.MonthToDate),
		Annual: AnnualStatementResponse{
			Year:            r.Annual.Year,
			IncomeNetCents:  r.Annual.IncomeNetCents,
			ExpenseNetCents: r.Annual.ExpenseNetCents,
			ResultCents:     r.Annual.ResultCents,
		},
	}
	if r.VATSettlement != nil {
		resp.VATSettlement = &VATSettlementResponse{
			IncomeStandard:  VATBucketResponse(r.VATSettlement.IncomeStandard),
			IncomeReduced:   VATBucketResponse(r.VATSettlement.IncomeReduced),
			ExpenseStandard: VATBucketResponse(r.VATSettlement.ExpenseStandard),
			ExpenseReduced:  VATBucketResponse(r.VATSettlement.ExpenseReduced),
			NetVATCents:     r.VATSettlement.NetVATCents,
		}
	}
	return resp
}
