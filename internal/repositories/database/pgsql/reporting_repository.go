package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a repository over the derived views.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountBalance reads the saldo_contas row for one account. The view
// reports zero for accounts with no entries, so a missing row means the
// account itself does not exist.
func (r *PgxReportingRepository) GetAccountBalance(ctx context.Context, accountID int64) (*domain.AccountBalance, error) {
	query := `SELECT conta_id, cod_conta, nome_banco, saldo_atual FROM saldo_contas WHERE conta_id = $1;`

	var b domain.AccountBalance
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&b.AccountID, &b.Code, &b.BankName, &b.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read balance for account %d: %w", accountID, err)
	}
	return &b, nil
}

// ListAccountBalances reads saldo_contas for every account.
func (r *PgxReportingRepository) ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	query := `SELECT conta_id, cod_conta, nome_banco, saldo_atual FROM saldo_contas ORDER BY nome_banco;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.Code, &b.BankName, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	return balances, nil
}

// GetCategoryRollup reads the resumo_categorias row for one category and
// month. A missing row is not an error: it reports zero totals.
func (r *PgxReportingRepository) GetCategoryRollup(ctx context.Context, category string, year int, month int) (*domain.CategorySummary, error) {
	query := `
		SELECT categoria, total_entrada, total_saida, ano, mes
		FROM resumo_categorias
		WHERE categoria = $1 AND ano = $2 AND mes = $3;
	`
	var s domain.CategorySummary
	err := r.pool.QueryRow(ctx, query, category, year, month).Scan(&s.Category, &s.TotalIn, &s.TotalOut, &s.Year, &s.Month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.CategorySummary{
				Category: category,
				TotalIn:  decimal.Zero,
				TotalOut: decimal.Zero,
				Year:     year,
				Month:    month,
			}, nil
		}
		return nil, fmt.Errorf("failed to read rollup for category %s: %w", category, err)
	}
	return &s, nil
}

// ListCategorySummaries reads every resumo_categorias row for a month.
func (r *PgxReportingRepository) ListCategorySummaries(ctx context.Context, year int, month int) ([]domain.CategorySummary, error) {
	query := `
		SELECT categoria, total_entrada, total_saida, ano, mes
		FROM resumo_categorias
		WHERE ano = $1 AND mes = $2
		ORDER BY categoria;
	`
	rows, err := r.pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.CategorySummary
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.Category, &s.TotalIn, &s.TotalOut, &s.Year, &s.Month); err != nil {
			return nil, fmt.Errorf("failed to scan category summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category summary rows: %w", err)
	}
	return summaries, nil
}

// GetPeriodTotals sums inflow and outflow over a date range. Zero bounds
// leave that side of the range open.
func (r *PgxReportingRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor_entrada), 0), COALESCE(SUM(valor_saida), 0)
		FROM lancamento
		WHERE 1=1
	`
	args := []any{}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND data >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND data <= $%d", len(args))
	}

	var income, expenses decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&income, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum period totals: %w", err)
	}
	return income, expenses, nil
}
