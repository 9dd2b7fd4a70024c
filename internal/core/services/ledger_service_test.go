package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/core/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, accountID *string, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

// --- Mock TaxCategoryRepository ---
type MockTaxCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.TaxCategoryRepository = (*MockTaxCategoryRepository)(nil)

func (m *MockTaxCategoryRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.TaxCategory, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCategory), args.Error(1)
}

func (m *MockTaxCategoryRepository) ListCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCategory), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockLedgerRepository
	mockCategories *MockTaxCategoryRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockCategories = new(MockTaxCategoryRepository)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockCategories)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateEntry_ExplicitRate() {
	ctx := context.Background()
	rate := decimal.NewFromInt(19)
	req := dto.CreateLedgerEntryRequest{
		Kind:           "EXPENSE",
		Description:    "Druckerpapier",
		GrossCents:     1190,
		VATRatePercent: &rate,
		BookedOn:       "2025-07-14",
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, nil, req)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryExpense, entry.Kind)
	suite.Equal(int64(1000), entry.NetCents)
	suite.Equal(int64(190), entry.VATCents)
	suite.Equal(int64(1190), entry.GrossCents)
	suite.Require().NotNil(entry.VATRatePercent)
	suite.True(entry.VATRatePercent.Equal(rate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_CategoryDefaultRate() {
	ctx := context.Background()
	defaultRate := decimal.NewFromInt(7)
	req := dto.CreateLedgerEntryRequest{
		Kind:         "INCOME",
		Description:  "Brötchenverkauf",
		CategoryCode: "SALES_REDUCED",
		GrossCents:   1070,
		BookedOn:     "2025-07-14",
	}

	suite.mockCategories.On("FindCategoryByCode", ctx, "SALES_REDUCED").
		Return(&domain.TaxCategory{Code: "SALES_REDUCED", Name: "Erlöse 7% USt", DefaultVATRatePercent: &defaultRate}, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, nil, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1000), entry.NetCents)
	suite.Equal(int64(70), entry.VATCents)
	suite.Require().NotNil(entry.VATRatePercent)
	suite.True(entry.VATRatePercent.Equal(defaultRate))
	suite.mockCategories.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_TransferCarriesNoRate() {
	ctx := context.Background()
	rate := decimal.NewFromInt(19)
	req := dto.CreateLedgerEntryRequest{
		Kind:           "TRANSFER",
		Description:    "Bank zu Kasse",
		GrossCents:     50000,
		VATRatePercent: &rate, // ignored for transfers
		BookedOn:       "2025-07-14",
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, nil, req)

	suite.Require().NoError(err)
	suite.Nil(entry.VATRatePercent)
	suite.Equal(int64(50000), entry.NetCents)
	suite.Equal(int64(0), entry.VATCents)
	suite.Equal(int64(50000), entry.GrossCents)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:         "EXPENSE",
		CategoryCode: "NO_SUCH_CODE",
		GrossCents:   1000,
		BookedOn:     "2025-07-14",
	}

	suite.mockCategories.On("FindCategoryByCode", ctx, "NO_SUCH_CODE").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEntry(ctx, nil, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_InvalidKind() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:       "REFUND",
		GrossCents: 1000,
		BookedOn:   "2025-07-14",
	}

	_, err := suite.service.CreateEntry(ctx, nil, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *LedgerServiceTestSuite) TestListCategories() {
	ctx := context.Background()
	rate := decimal.NewFromInt(19)
	cats := []domain.TaxCategory{
		{Code: "OFFICE_SUPPLIES", Name: "Bürobedarf", ChartCode: "4930", DefaultVATRatePercent: &rate},
		{Code: "RENT", Name: "Miete", ChartCode: "4210"},
	}

	suite.mockCategories.On("ListCategories", ctx).Return(cats, nil).Once()

	result, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.mockCategories.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
