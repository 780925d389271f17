package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/core/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountBalance(ctx context.Context, accountID int64) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountID)
	var balance *domain.AccountBalance
	if args.Get(0) != nil {
		balance = args.Get(0).(*domain.AccountBalance)
	}
	return balance, args.Error(1)
}

func (m *MockReportingRepository) ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	var balances []domain.AccountBalance
	if args.Get(0) != nil {
		balances = args.Get(0).([]domain.AccountBalance)
	}
	return balances, args.Error(1)
}

func (m *MockReportingRepository) GetCategoryRollup(ctx context.Context, category string, year int, month int) (*domain.CategorySummary, error) {
	args := m.Called(ctx, category, year, month)
	var summary *domain.CategorySummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.CategorySummary)
	}
	return summary, args.Error(1)
}

func (m *MockReportingRepository) ListCategorySummaries(ctx context.Context, year int, month int) ([]domain.CategorySummary, error) {
	args := m.Called(ctx, year, month)
	var summaries []domain.CategorySummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.CategorySummary)
	}
	return summaries, args.Error(1)
}

func (m *MockReportingRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_SplitsFlow() {
	ctx := context.Background()
	suite.mockRepo.On("GetPeriodTotals", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(dec("700"), dec("300"), nil).Once()
	suite.mockRepo.On("ListAccountBalances", ctx).Return([]domain.AccountBalance{
		{AccountID: 1, Balance: dec("1000")},
		{AccountID: 2, Balance: dec("-250")},
	}, nil).Once()

	summary, err := suite.service.GetPeriodSummary(ctx, dto.PeriodQuery{From: "2025-01-01", To: "2025-12-31"})

	suite.Require().NoError(err)
	suite.True(summary.TotalBalance.Equal(dec("750")))
	suite.True(summary.Income.Equal(dec("700")))
	suite.True(summary.Expenses.Equal(dec("300")))
	suite.True(summary.Net.Equal(dec("400")))
	suite.True(summary.IncomePct.Equal(dec("70")))
	suite.True(summary.ExpensePct.Equal(dec("30")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_NoFlow() {
	ctx := context.Background()
	suite.mockRepo.On("GetPeriodTotals", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockRepo.On("ListAccountBalances", ctx).Return([]domain.AccountBalance{}, nil).Once()

	summary, err := suite.service.GetPeriodSummary(ctx, dto.PeriodQuery{})

	suite.Require().NoError(err)
	suite.True(summary.IncomePct.IsZero())
	suite.True(summary.ExpensePct.IsZero())
	suite.True(summary.TotalBalance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_InvertedWindow() {
	ctx := context.Background()

	_, err := suite.service.GetPeriodSummary(ctx, dto.PeriodQuery{From: "2025-06-01", To: "2025-01-01"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetPeriodTotals")
}

func (suite *ReportingServiceTestSuite) TestGetCategoryRollup_BadMonth() {
	ctx := context.Background()

	_, err := suite.service.GetCategoryRollup(ctx, "Vendas", 2025, 13)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetCategoryRollup")
}

func (suite *ReportingServiceTestSuite) TestGetCategoryRollup_ZeroWhenAbsent() {
	ctx := context.Background()
	suite.mockRepo.On("GetCategoryRollup", ctx, "Insumos", 2025, 2).Return(&domain.CategorySummary{
		Category: "Insumos",
		TotalIn:  decimal.Zero,
		TotalOut: decimal.Zero,
		Year:     2025,
		Month:    2,
	}, nil).Once()

	summary, err := suite.service.GetCategoryRollup(ctx, "Insumos", 2025, 2)

	suite.Require().NoError(err)
	suite.True(summary.TotalIn.IsZero())
	suite.True(summary.TotalOut.IsZero())
	suite.Equal("Insumos", summary.Category)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
