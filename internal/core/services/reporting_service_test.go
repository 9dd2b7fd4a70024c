package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumLedgerEntries(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(domain.RangeTotals), args.Error(1)
}

func (m *MockReportingRepository) SumReceipts(ctx context.Context, accountID *string, from, to time.Time) (int64, int64, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) SumPaidInvoices(ctx context.Context, accountID *string, from, to time.Time) (int64, int64, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) SumVATBuckets(ctx context.Context, accountID *string, from, to time.Time) ([]domain.VATBucketRow, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VATBucketRow), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetSettings(ctx context.Context, accountID *string) (domain.AccountSettings, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.AccountSettings), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockReportingRepository
	mockSettings *MockSettingsRepository
	service      portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockSettings = new(MockSettingsRepository)
	suite.service = services.NewReportingService(suite.mockRepo, suite.mockSettings)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSumSources_CombinesAllThree() {
	ctx := context.Background()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), from, to).
		Return(domain.RangeTotals{IncomeGrossCents: 10000, IncomeNetCents: 8403, ExpenseGrossCents: 5000, ExpenseNetCents: 4202}, nil).Once()
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), from, to).
		Return(int64(3000), int64(2521), nil).Once()
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), from, to).
		Return(int64(12000), int64(10084), nil).Once()

	totals, err := suite.service.SumSources(ctx, nil, from, to)

	suite.Require().NoError(err)
	suite.Equal(int64(25000), totals.IncomeGrossCents)
	suite.Equal(int64(21008), totals.IncomeNetCents)
	suite.Equal(int64(5000), totals.ExpenseGrossCents)
	suite.Equal(int64(4202), totals.ExpenseNetCents)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSumSources_FailedSourceCountsZero() {
	ctx := context.Background()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), from, to).
		Return(domain.RangeTotals{}, errors.New("table gone")).Once()
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), from, to).
		Return(int64(3000), int64(3000), nil).Once()
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), from, to).
		Return(int64(0), int64(0), errors.New("column gone")).Once()

	totals, err := suite.service.SumSources(ctx, nil, from, to)

	// The surviving source still counts; nothing fails.
	suite.Require().NoError(err)
	suite.Equal(int64(3000), totals.IncomeGrossCents)
	suite.Equal(int64(0), totals.ExpenseGrossCents)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_Windows() {
	ctx := context.Background()
	asOf := time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)

	// Every window ends at the start of the day after asOf (half-open).
	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), mock.AnythingOfType("time.Time"), dayEnd).
		Return(domain.RangeTotals{IncomeGrossCents: 100}, nil)
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), mock.AnythingOfType("time.Time"), dayEnd).
		Return(int64(0), int64(0), nil)
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), mock.AnythingOfType("time.Time"), dayEnd).
		Return(int64(0), int64(0), nil)

	// Annual window runs over the whole calendar year.
	yearStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), yearStart, yearEnd).
		Return(domain.RangeTotals{IncomeNetCents: 50000, ExpenseNetCents: 20000}, nil)
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), yearStart, yearEnd).
		Return(int64(0), int64(0), nil)
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), yearStart, yearEnd).
		Return(int64(0), int64(0), nil)

	suite.mockSettings.On("GetSettings", ctx, (*string)(nil)).
		Return(domain.AccountSettings{SmallBusinessScheme: false}, nil).Once()
	monthStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumVATBuckets", ctx, (*string)(nil), monthStart, dayEnd).
		Return([]domain.VATBucketRow{}, nil).Once()

	report, err := suite.service.PeriodSummary(ctx, nil, asOf)

	suite.Require().NoError(err)
	suite.Equal(asOf, report.AsOf)
	suite.Equal(int64(100), report.Today.IncomeGrossCents)
	suite.Equal(int64(100), report.Last7Days.IncomeGrossCents)
	suite.Equal(int64(100), report.Last30Days.IncomeGrossCents)
	suite.Equal(int64(100), report.MonthToDate.IncomeGrossCents)
	suite.Require().NotNil(report.VATSettlement)
	suite.Equal(2025, report.Annual.Year)
	suite.Equal(int64(30000), report.Annual.ResultCents)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_WindowBounds() {
	ctx := context.Background()
	asOf := time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)

	// Trailing windows start a full 7 and 30 days before asOf, so a record
	// booked exactly on 2025-07-08 or 2025-06-15 still falls inside them.
	windows := map[time.Time]int64{
		time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC): 1,  // today
		time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC):  7,  // last 7 days
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC): 30, // last 30 days
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC):  15, // month to date
	}
	for from, gross := range windows {
		suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), from, dayEnd).
			Return(domain.RangeTotals{IncomeGrossCents: gross}, nil).Once()
		suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), from, dayEnd).
			Return(int64(0), int64(0), nil).Once()
		suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), from, dayEnd).
			Return(int64(0), int64(0), nil).Once()
	}

	yearStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), yearStart, yearEnd).
		Return(domain.RangeTotals{}, nil).Once()
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), yearStart, yearEnd).
		Return(int64(0), int64(0), nil).Once()
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), yearStart, yearEnd).
		Return(int64(0), int64(0), nil).Once()

	suite.mockSettings.On("GetSettings", ctx, (*string)(nil)).
		Return(domain.AccountSettings{SmallBusinessScheme: true}, nil).Once()

	report, err := suite.service.PeriodSummary(ctx, nil, asOf)

	suite.Require().NoError(err)
	suite.Equal(int64(1), report.Today.IncomeGrossCents)
	suite.Equal(int64(7), report.Last7Days.IncomeGrossCents)
	suite.Equal(int64(30), report.Last30Days.IncomeGrossCents)
	suite.Equal(int64(15), report.MonthToDate.IncomeGrossCents)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_VATBucketFolding() {
	ctx := context.Background()
	asOf := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumLedgerEntries", ctx, (*string)(nil), mock.Anything, mock.Anything).
		Return(domain.RangeTotals{}, nil)
	suite.mockRepo.On("SumReceipts", ctx, (*string)(nil), mock.Anything, mock.Anything).
		Return(int64(0), int64(0), nil)
	suite.mockRepo.On("SumPaidInvoices", ctx, (*string)(nil), mock.Anything, mock.Anything).
		Return(int64(0), int64(0), nil)
	suite.mockSettings.On("GetSettings", ctx, (*string)(nil)).
		Return(domain.AccountSettings{}, nil).Once()

	suite.mockRepo.On("SumVATBuckets", ctx, (*string)(nil), mock.Anything, mock.Anything).
		Return([]domain.VATBucketRow{
			{Kind: domain.EntryIncome, RatePercent: domain.VATRateStandard, NetCents: 10000, VATCents: 1900},
			{Kind: domain.EntryIncome, RatePercent: domain.VATRateReduced, NetCents: 2000, VATCents: 140},
			{Kind: domain.EntryExpense, RatePercent: domain.VATRateStandard, NetCents: 4000, VATCents: 760},
		}, nil).Once()

	report, err := suite.service.PeriodSummary(ctx, nil, asOf)

	suite.Require().NoError(err)
	suite.Require().NotNil(report.VATSettlement)
	suite.Equal(int64(1900), report.VATSettlement.IncomeStandard.VATCents)
	suite.Equal(int64(140), report.VATSettlement.IncomeReduced.VATCents)
	suite.Equal(int64(760), report.VATSettlement.ExpenseStandard.VATCents)
	suite.Equal(int64(0), report.VATSettlement.ExpenseReduced.VATCents)
	// 1900 + 140 - 760
	suite.Equal(int64(1280), report.VATSettlement.NetVATCents)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_SmallBusinessSuppressesVAT() {
	ctx := context.Background()
	asOf := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	accountID := "acct-1"

	suite.mockRepo.On("SumLedgerEntries", ctx, &accountID, mock.Anything, mock.Anything).
		Return(domain.RangeTotals{}, nil)
	suite.mockRepo.On("SumReceipts", ctx, &accountID, mock.Anything, mock.Anything).
		Return(int64(0), int64(0), nil)
	suite.mockRepo.On("SumPaidInvoices", ctx, &accountID, mock.Anything, mock.Anything).
		Return(int64(0), int64(0), nil)

	suite.mockSettings.On("GetSettings", ctx, &accountID).
		Return(domain.AccountSettings{AccountID: &accountID, SmallBusinessScheme: true}, nil).Once()

	report, err := suite.service.PeriodSummary(ctx, &accountID, asOf)

	suite.Require().NoError(err)
	suite.Nil(report.VATSettlement)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumVATBuckets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
