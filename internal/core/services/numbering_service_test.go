package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NumberingRepository ---
type MockNumberingRepository struct {
	mock.Mock
}

var _ portsrepo.NumberingRepository = (*MockNumberingRepository)(nil)

func (m *MockNumberingRepository) AllocateNext(ctx context.Context, key string, mode domain.PeriodMode, at time.Time) (int64, error) {
	args := m.Called(ctx, key, mode, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingRepository) FindCounterByKey(ctx context.Context, key string) (*domain.NumberingCounter, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingCounter), args.Error(1)
}

// --- Fake counter repository with real allocation semantics ---
// Mirrors the storage contract in memory: per-key counters, lazy creation,
// period rollover, one allocation at a time.
type fakeCounterRepo struct {
	mu       sync.Mutex
	counters map[string]*domain.NumberingCounter
}

var _ portsrepo.NumberingRepository = (*fakeCounterRepo)(nil)

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string]*domain.NumberingCounter)}
}

func (f *fakeCounterRepo) AllocateNext(ctx context.Context, key string, mode domain.PeriodMode, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	periodValue := mode.PeriodValue(at)
	counter, ok := f.counters[key]
	if !ok {
		f.counters[key] = &domain.NumberingCounter{Key: key, Next: 2, Period: mode, PeriodValue: periodValue}
		return 1, nil
	}
	if mode != domain.PeriodNone && counter.PeriodValue != periodValue {
		counter.Next = 2
		counter.PeriodValue = periodValue
		return 1, nil
	}
	seq := counter.Next
	counter.Next++
	return seq, nil
}

func (f *fakeCounterRepo) FindCounterByKey(ctx context.Context, key string) (*domain.NumberingCounter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counter, ok := f.counters[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := *counter
	return &c, nil
}

// --- Test Suite Setup ---
type NumberingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNumberingRepository
	service  portssvc.NumberingService
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNumberingRepository)
	suite.service = services.NewNumberingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *NumberingServiceTestSuite) TestNextNumber_RendersTemplate() {
	ctx := context.Background()
	at := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

	suite.mockRepo.On("AllocateNext", ctx, domain.NumberKeyInvoice, domain.PeriodYearly, at).Return(int64(1), nil).Once()

	seq, number, err := suite.service.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{yyyy}-{0000}", domain.PeriodYearly, at)

	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
	suite.Equal("INV-2025-0001", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestNextNumber_EmptyKey() {
	ctx := context.Background()

	_, _, err := suite.service.NextNumber(ctx, "  ", "INV-{0000}", domain.PeriodNone, time.Now())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "AllocateNext", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NumberingServiceTestSuite) TestNextNumber_InvalidMode() {
	ctx := context.Background()

	_, _, err := suite.service.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{0000}", domain.PeriodMode("WEEKLY"), time.Now())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *NumberingServiceTestSuite) TestNextNumber_AllocationFailure() {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repoErr := errors.New("connection lost")

	suite.mockRepo.On("AllocateNext", ctx, domain.NumberKeyReceipt, domain.PeriodMonthly, at).Return(int64(0), repoErr).Once()

	_, _, err := suite.service.NextNumber(ctx, domain.NumberKeyReceipt, "REC-{yyyy}{mm}-{000}", domain.PeriodMonthly, at)

	suite.Require().Error(err)
	suite.True(errors.Is(err, repoErr))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestNextNumber_YearlyRollover() {
	ctx := context.Background()
	svc := services.NewNumberingService(newFakeCounterRepo())

	dec31 := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	jan1 := time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC)

	seq, number, err := svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{yyyy}-{0000}", domain.PeriodYearly, dec31)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
	suite.Equal("INV-2025-0001", number)

	seq, number, err = svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{yyyy}-{0000}", domain.PeriodYearly, dec31)
	suite.Require().NoError(err)
	suite.Equal(int64(2), seq)
	suite.Equal("INV-2025-0002", number)

	// The year changed: the counter restarts at 1.
	seq, number, err = svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{yyyy}-{0000}", domain.PeriodYearly, jan1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
	suite.Equal("INV-2026-0001", number)

	seq, _, err = svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{yyyy}-{0000}", domain.PeriodYearly, jan1)
	suite.Require().NoError(err)
	suite.Equal(int64(2), seq)
}

func (suite *NumberingServiceTestSuite) TestNextNumber_IndependentKeys() {
	ctx := context.Background()
	svc := services.NewNumberingService(newFakeCounterRepo())
	at := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	seq, _, err := svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{0000}", domain.PeriodNone, at)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	// A different key keeps its own sequence.
	seq, _, err = svc.NextNumber(ctx, domain.NumberKeyQuote, "QUO-{0000}", domain.PeriodNone, at)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	seq, _, err = svc.NextNumber(ctx, domain.NumberKeyInvoice, "INV-{0000}", domain.PeriodNone, at)
	suite.Require().NoError(err)
	suite.Equal(int64(2), seq)
}

func (suite *NumberingServiceTestSuite) TestNextNumber_ConcurrentAllocationsDistinct() {
	ctx := context.Background()
	svc := services.NewNumberingService(newFakeCounterRepo())
	at := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	const workers = 50
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, _, err := svc.NextNumber(ctx, domain.NumberKeyReceipt, "REC-{000000}", domain.PeriodNone, at)
			suite.NoError(err)
			results <- seq
		}()
	}
	wg.Wait()
	close(results)

	seqs := make([]int64, 0, workers)
	for seq := range results {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })

	suite.Require().Len(seqs, workers)
	for i, seq := range seqs {
		// No duplicates, no gaps: exactly 1..workers.
		suite.Equal(int64(i+1), seq)
	}
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
