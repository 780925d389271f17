package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	"github.com/primeonhub/agrocontabil_app/internal/models"
	"github.com/primeonhub/agrocontabil_app/internal/utils/mapping"
)

type PgxBankAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{pool: pool}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `id, cod_conta, pais_cta, banco, nome_banco, agencia, num_conta, saldo_inicial, data_abertura`

func scanBankAccount(row pgx.Row) (*models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.ID, &m.Code, &m.Country, &m.BankCode, &m.BankName,
		&m.Branch, &m.AccountNumber, &m.OpeningBalance, &m.OpenedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBankAccount inserts a new account and returns it with the generated ID.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	m := mapping.ToModelBankAccount(account)

	query := `
		INSERT INTO conta_bancaria (cod_conta, pais_cta, banco, nome_banco, agencia, num_conta, saldo_inicial, data_abertura)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		m.Code, m.Country, m.BankCode, m.BankName, m.Branch, m.AccountNumber, m.OpeningBalance, m.OpenedAt,
	).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return nil, fmt.Errorf("failed to save bank account %s: %w", m.Code, err)
	}

	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// FindBankAccountByID retrieves an account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, id int64) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM conta_bancaria WHERE id = $1;`

	m, err := scanBankAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account by ID %d: %w", id, err)
	}

	d := mapping.ToDomainBankAccount(*m)
	return &d, nil
}

// ListBankAccounts retrieves all accounts ordered by bank name.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM conta_bancaria ORDER BY nome_banco;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return accounts, nil
}

// UpdateBankAccount mutates an existing account in place.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		UPDATE conta_bancaria
		SET cod_conta = $1, banco = $2, nome_banco = $3, agencia = $4, num_conta = $5, saldo_inicial = $6
		WHERE id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Code, m.BankCode, m.BankName, m.Branch, m.AccountNumber, m.OpeningBalance, m.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update bank account %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBankAccount removes an account. Fails with ErrConflict while ledger
// entries still reference it.
func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conta_bancaria WHERE id = $1;`, id)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: bank account %d is referenced by ledger entries", apperrors.ErrConflict, id)
		}
		return fmt.Errorf("failed to delete bank account %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
