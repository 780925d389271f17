package services

import (
	"context"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// ReportingSvcFacade defines the derived read-only views over the ledger.
type ReportingSvcFacade interface {
	// GetAccountBalance reports one account's signed current balance, taken
	// from its latest ledger entry. Zero when the account has no entries.
	GetAccountBalance(ctx context.Context, accountID int64) (*domain.AccountBalance, error)

	// ListAccountBalances reports the current balance of every account.
	ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// GetCategoryRollup reports total inflow and outflow for one category in
	// one calendar month. Zero totals when nothing matches.
	GetCategoryRollup(ctx context.Context, category string, year int, month int) (*domain.CategorySummary, error)

	// ListCategorySummaries reports the rollup of every category in a month.
	ListCategorySummaries(ctx context.Context, year int, month int) ([]domain.CategorySummary, error)

	// GetPeriodSummary aggregates income, expenses, net result and percentage
	// split over a date range, plus the total balance across all accounts.
	GetPeriodSummary(ctx context.Context, params dto.PeriodQuery) (*domain.PeriodSummary, error)
}
