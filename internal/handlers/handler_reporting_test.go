package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/klarbuch/klarbuch_app/internal/handlers"
	"github.com/klarbuch/klarbuch_app/internal/middleware"
	"github.com/klarbuch/klarbuch_app/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) SumSources(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(domain.RangeTotals), args.Error(1)
}

func (m *MockReportingService) PeriodSummary(ctx context.Context, accountID *string, asOf time.Time) (*domain.PeriodReport, error) {
	args := m.Called(ctx, accountID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodReport), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockReportingService)

	cfg := &config.Config{IsProduction: true} // no swagger routes in tests
	container := &portssvc.ServiceContainer{Reporting: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetPeriodSummary() {
	asOf := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	report := &domain.PeriodReport{
		AsOf:        asOf,
		Last30Days:  domain.RangeTotals{IncomeGrossCents: 25000},
		MonthToDate: domain.RangeTotals{IncomeGrossCents: 12000},
		Annual:      domain.AnnualStatement{Year: 2025, ResultCents: 30000},
	}

	suite.mockService.On("PeriodSummary", mock.Anything, (*string)(nil), asOf).Return(report, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?asOf=2025-07-15", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PeriodReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(25000), resp.Last30Days.IncomeGrossCents)
	suite.Equal(2025, resp.Annual.Year)
	suite.Nil(resp.VATSettlement)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetPeriodSummary_InvalidDate() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?asOf=15.07.2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "PeriodSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestGetPeriodSummary_AccountScopeHeader() {
	asOf := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	accountID := "acct-42"
	report := &domain.PeriodReport{AsOf: asOf}

	suite.mockService.On("PeriodSummary", mock.Anything, &accountID, asOf).Return(report, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?asOf=2025-07-15", nil)
	req.Header.Set(middleware.AccountScopeHeader, accountID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
