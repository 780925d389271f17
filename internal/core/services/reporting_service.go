package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

type ReportingService struct {
	BaseService
	repo portsrepo.ReportingRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{repo: repo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetAccountBalance reports one account's signed current balance.
func (s *ReportingService) GetAccountBalance(ctx context.Context, accountID int64) (*domain.AccountBalance, error) {
	balance, err := s.repo.GetAccountBalance(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read account balance", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return balance, nil
}

// ListAccountBalances reports the current balance of every account.
func (s *ReportingService) ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	balances, err := s.repo.ListAccountBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances")
		return nil, err
	}
	if balances == nil {
		balances = []domain.AccountBalance{}
	}
	return balances, nil
}

// GetCategoryRollup reports one category's monthly inflow and outflow.
func (s *ReportingService) GetCategoryRollup(ctx context.Context, category string, year int, month int) (*domain.CategorySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	summary, err := s.repo.GetCategoryRollup(ctx, category, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to read category rollup", slog.String("category", category))
		return nil, err
	}
	return summary, nil
}

// ListCategorySummaries reports the rollup of every category in a month.
func (s *ReportingService) ListCategorySummaries(ctx context.Context, year int, month int) ([]domain.CategorySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	summaries, err := s.repo.ListCategorySummaries(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list category summaries")
		return nil, err
	}
	if summaries == nil {
		summaries = []domain.CategorySummary{}
	}
	return summaries, nil
}

// GetPeriodSummary aggregates the dashboard numbers: total balance across
// all accounts, income and expenses in the window, net result and the
// percentage split of the pie chart.
func (s *ReportingService) GetPeriodSummary(ctx context.Context, params dto.PeriodQuery) (*domain.PeriodSummary, error) {
	var from, to time.Time
	var err error
	if params.From != "" {
		if from, err = parseDate("from", params.From); err != nil {
			return nil, err
		}
	}
	if params.To != "" {
		if to, err = parseDate("to", params.To); err != nil {
			return nil, err
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: to must not precede from", apperrors.ErrValidation)
	}

	income, expenses, err := s.repo.GetPeriodTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum period totals")
		return nil, err
	}

	balances, err := s.repo.ListAccountBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances for summary")
		return nil, err
	}
	totalBalance := decimal.Zero
	for _, b := range balances {
		totalBalance = totalBalance.Add(b.Balance)
	}

	summary := &domain.PeriodSummary{
		TotalBalance: totalBalance,
		Income:       income,
		Expenses:     expenses,
		Net:          income.Sub(expenses),
		IncomePct:    decimal.Zero,
		ExpensePct:   decimal.Zero,
	}
	// The pie chart splits flow volume, not net sign.
	flow := income.Add(expenses)
	if flow.IsPositive() {
		summary.IncomePct = income.Mul(hundred).DivRound(flow, 2)
		summary.ExpensePct = hundred.Sub(summary.IncomePct)
	}
	return summary, nil
}
