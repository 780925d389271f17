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

type PgxCounterpartyRepository struct {
	pool *pgxpool.Pool
}

// newPgxCounterpartyRepository creates a new repository for participant data.
func newPgxCounterpartyRepository(pool *pgxpool.Pool) portsrepo.CounterpartyRepository {
	return &PgxCounterpartyRepository{pool: pool}
}

var _ portsrepo.CounterpartyRepository = (*PgxCounterpartyRepository)(nil)

const counterpartyColumns = `id, cpf_cnpj, nome, tipo_contraparte, data_cadastro`

func scanCounterparty(row pgx.Row) (*models.Counterparty, error) {
	var m models.Counterparty
	if err := row.Scan(&m.ID, &m.TaxID, &m.Name, &m.Type, &m.RegisteredAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCounterparty inserts a new participant and returns it with the
// generated ID. The tax id is unique across participants.
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, cp domain.Counterparty) (*domain.Counterparty, error) {
	m := mapping.ToModelCounterparty(cp)

	query := `
		INSERT INTO participante (cpf_cnpj, nome, tipo_contraparte, data_cadastro)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query, m.TaxID, m.Name, m.Type, m.RegisteredAt).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: participant with tax id %s already exists", apperrors.ErrDuplicate, m.TaxID)
		}
		return nil, fmt.Errorf("failed to save participant %s: %w", m.Name, err)
	}

	d := mapping.ToDomainCounterparty(m)
	return &d, nil
}

// FindCounterpartyByID retrieves a participant by its ID.
func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, id int64) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM participante WHERE id = $1;`

	m, err := scanCounterparty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant by ID %d: %w", id, err)
	}

	d := mapping.ToDomainCounterparty(*m)
	return &d, nil
}

// ListCounterparties retrieves all participants, most recently registered first.
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM participante ORDER BY data_cadastro DESC, id DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var cps []domain.Counterparty
	for rows.Next() {
		m, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		cps = append(cps, mapping.ToDomainCounterparty(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return cps, nil
}

// UpdateCounterparty mutates an existing participant in place.
func (r *PgxCounterpartyRepository) UpdateCounterparty(ctx context.Context, cp domain.Counterparty) error {
	m := mapping.ToModelCounterparty(cp)

	query := `UPDATE participante SET cpf_cnpj = $1, nome = $2, tipo_contraparte = $3 WHERE id = $4;`
	tag, err := r.pool.Exec(ctx, query, m.TaxID, m.Name, m.Type, m.ID)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: participant with tax id %s already exists", apperrors.ErrDuplicate, m.TaxID)
		}
		return fmt.Errorf("failed to update participant %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCounterparty removes a participant. Ledger entries keep a nullable
// reference, so deletion fails with ErrConflict while entries point at it.
func (r *PgxCounterpartyRepository) DeleteCounterparty(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM participante WHERE id = $1;`, id)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: participant %d is referenced by ledger entries", apperrors.ErrConflict, id)
		}
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
