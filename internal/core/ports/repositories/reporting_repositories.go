package repositories

import (
	"context"
	"time"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository reads the derived views over the ledger. All methods
// are pure aggregate queries with no side effects.
type ReportingRepository interface {
	// GetAccountBalance reads the saldo_contas row for one account. Accounts
	// with no entries report a zero balance.
	GetAccountBalance(ctx context.Context, accountID int64) (*domain.AccountBalance, error)

	// ListAccountBalances reads saldo_contas for every account.
	ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// GetCategoryRollup reads the resumo_categorias row for one category and
	// calendar month. Returns zero totals when no entries match.
	GetCategoryRollup(ctx context.Context, category string, year int, month int) (*domain.CategorySummary, error)

	// ListCategorySummaries reads every resumo_categorias row for a month.
	ListCategorySummaries(ctx context.Context, year int, month int) ([]domain.CategorySummary, error)

	// GetPeriodTotals sums valor_entrada and valor_saida over a date range.
	GetPeriodTotals(ctx context.Context, from, to time.Time) (income, expenses decimal.Decimal, err error)
}
