package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, accountID *string, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, accountID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Invoice), returnedNextToken, args.Error(2)
}

func (m *MockInvoiceRepository) MarkInvoicePaid(ctx context.Context, accountID *string, invoiceID string, paidAt time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, accountID, invoiceID, paidAt, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, accountID *string, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, accountID, invoiceID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock NumberingService ---
type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingService = (*MockNumberingService)(nil)

func (m *MockNumberingService) NextNumber(ctx context.Context, key, template string, mode domain.PeriodMode, at time.Time) (int64, string, error) {
	args := m.Called(ctx, key, template, mode, at)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

// --- Test Suite Setup ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockInvoiceRepository
	mockNumbering *MockNumberingService
	service       portssvc.InvoiceSvcFacade
	format        domain.NumberFormat
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockNumbering = new(MockNumberingService)
	suite.format = domain.NumberFormat{Template: "INV-{yyyy}-{0000}", Mode: domain.PeriodYearly}
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockNumbering, suite.format)
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_GrossEntry() {
	ctx := context.Background()
	rate := decimal.NewFromInt(19)
	gross := int64(11900)
	req := dto.CreateInvoiceRequest{
		CustomerName:   "Musterfirma GmbH",
		GrossCents:     &gross,
		TaxRatePercent: &rate,
		IssueDate:      "2025-07-14",
	}
	issueDate := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	suite.mockNumbering.On("NextNumber", ctx, domain.NumberKeyInvoice, suite.format.Template, suite.format.Mode, issueDate).
		Return(int64(7), "INV-2025-0007", nil).Once()
	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, nil, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal("INV-2025-0007", invoice.Number)
	suite.Equal(int64(10000), invoice.NetCents)
	suite.Equal(int64(1900), invoice.TaxCents)
	suite.Equal(int64(11900), invoice.GrossCents)
	suite.Equal(domain.InvoiceOpen, invoice.Status)
	suite.mockNumbering.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NetEntry() {
	ctx := context.Background()
	rate := decimal.NewFromInt(7)
	net := int64(10000)
	req := dto.CreateInvoiceRequest{
		CustomerName:   "Bäckerei Schmidt",
		NetCents:       &net,
		TaxRatePercent: &rate,
		IssueDate:      "2025-07-14",
	}

	suite.mockNumbering.On("NextNumber", ctx, domain.NumberKeyInvoice, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), "INV-2025-0001", nil).Once()
	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, nil, req)

	suite.Require().NoError(err)
	suite.Equal(int64(10000), invoice.NetCents)
	suite.Equal(int64(700), invoice.TaxCents)
	suite.Equal(int64(10700), invoice.GrossCents)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BothLegsRejected() {
	ctx := context.Background()
	gross := int64(11900)
	net := int64(10000)
	req := dto.CreateInvoiceRequest{
		CustomerName: "Musterfirma GmbH",
		GrossCents:   &gross,
		NetCents:     &net,
		IssueDate:    "2025-07-14",
	}

	_, err := suite.service.CreateInvoice(ctx, nil, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoNumberNoDocument() {
	ctx := context.Background()
	gross := int64(5000)
	req := dto.CreateInvoiceRequest{
		CustomerName: "Musterfirma GmbH",
		GrossCents:   &gross,
		IssueDate:    "2025-07-14",
	}

	suite.mockNumbering.On("NextNumber", ctx, domain.NumberKeyInvoice, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), "", errors.New("lock timeout")).Once()

	_, err := suite.service.CreateInvoice(ctx, nil, req)

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid() {
	ctx := context.Background()
	invoiceID := "inv-1"
	paidAt := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	paid := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoicePaid, PaidAt: &paidAt}

	suite.mockRepo.On("MarkInvoicePaid", ctx, (*string)(nil), invoiceID, paidAt, "system", mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, (*string)(nil), invoiceID).Return(paid, nil).Once()

	invoice, err := suite.service.MarkInvoicePaid(ctx, nil, invoiceID, paidAt)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.True(invoice.Realized())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_CancelledNotPayable() {
	ctx := context.Background()
	invoiceID := "inv-cancelled"
	paidAt := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	// The repository refuses the transition for cancelled invoices.
	suite.mockRepo.On("MarkInvoicePaid", ctx, (*string)(nil), invoiceID, paidAt, "system", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.MarkInvoicePaid(ctx, nil, invoiceID, paidAt)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice() {
	ctx := context.Background()
	accountID := "acct-1"

	suite.mockRepo.On("UpdateInvoiceStatus", ctx, &accountID, "inv-2", domain.InvoiceCancelled, accountID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.CancelInvoice(ctx, &accountID, "inv-2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
