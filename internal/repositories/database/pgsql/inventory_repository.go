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

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxInventoryRepository creates a new repository for stock data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

const inventoryColumns = `id, produto, quantidade, unidade_medida, valor_unitario, local_armazenamento, data_entrada, data_validade, imovel_id`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ID, &m.Product, &m.Quantity, &m.MeasureUnit, &m.UnitValue,
		&m.StorageLocation, &m.EnteredAt, &m.ExpiresAt, &m.PropertyID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveInventoryItem inserts a new stock item and returns it with the
// generated ID.
func (r *PgxInventoryRepository) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	m := mapping.ToModelInventoryItem(item)

	query := `
		INSERT INTO estoque (produto, quantidade, unidade_medida, valor_unitario, local_armazenamento, data_entrada, data_validade, imovel_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		m.Product, m.Quantity, m.MeasureUnit, m.UnitValue, m.StorageLocation, m.EnteredAt, m.ExpiresAt, m.PropertyID,
	).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return nil, fmt.Errorf("%w: property does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save stock item %s: %w", m.Product, err)
	}

	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// FindInventoryItemByID retrieves a stock item by its ID.
func (r *PgxInventoryRepository) FindInventoryItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM estoque WHERE id = $1;`

	m, err := scanInventoryItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock item by ID %d: %w", id, err)
	}

	d := mapping.ToDomainInventoryItem(*m)
	return &d, nil
}

// ListInventoryItems retrieves all stock items, soonest expiry first so the
// screen surfaces items needing attention.
func (r *PgxInventoryRepository) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM estoque ORDER BY data_validade ASC NULLS LAST, id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock item row: %w", err)
		}
		items = append(items, mapping.ToDomainInventoryItem(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock item rows: %w", err)
	}
	return items, nil
}

// UpdateInventoryItem mutates an existing stock item in place.
func (r *PgxInventoryRepository) UpdateInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)

	query := `
		UPDATE estoque
		SET produto = $1, quantidade = $2, unidade_medida = $3, valor_unitario = $4,
			local_armazenamento = $5, data_validade = $6, imovel_id = $7
		WHERE id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Product, m.Quantity, m.MeasureUnit, m.UnitValue, m.StorageLocation, m.ExpiresAt, m.PropertyID, m.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: property does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update stock item %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInventoryItem removes a stock item.
func (r *PgxInventoryRepository) DeleteInventoryItem(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM estoque WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
