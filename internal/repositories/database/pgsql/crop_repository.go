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

type PgxCropRepository struct {
	pool *pgxpool.Pool
}

// newPgxCropRepository creates a new repository for crop lookup data.
func newPgxCropRepository(pool *pgxpool.Pool) portsrepo.CropRepository {
	return &PgxCropRepository{pool: pool}
}

var _ portsrepo.CropRepository = (*PgxCropRepository)(nil)

const cropColumns = `id, nome, tipo, ciclo, unidade_medida`

func scanCrop(row pgx.Row) (*models.Crop, error) {
	var m models.Crop
	if err := row.Scan(&m.ID, &m.Name, &m.Type, &m.Cycle, &m.MeasureUnit); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCrop inserts a new crop and returns it with the generated ID.
func (r *PgxCropRepository) SaveCrop(ctx context.Context, crop domain.Crop) (*domain.Crop, error) {
	m := mapping.ToModelCrop(crop)

	query := `INSERT INTO cultura (nome, tipo, ciclo, unidade_medida) VALUES ($1, $2, $3, $4) RETURNING id;`
	err := r.pool.QueryRow(ctx, query, m.Name, m.Type, m.Cycle, m.MeasureUnit).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save crop %s: %w", m.Name, err)
	}

	d := mapping.ToDomainCrop(m)
	return &d, nil
}

// FindCropByID retrieves a crop by its ID.
func (r *PgxCropRepository) FindCropByID(ctx context.Context, id int64) (*domain.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM cultura WHERE id = $1;`

	m, err := scanCrop(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find crop by ID %d: %w", id, err)
	}

	d := mapping.ToDomainCrop(*m)
	return &d, nil
}

// ListCrops retrieves all crops ordered by name.
func (r *PgxCropRepository) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM cultura ORDER BY nome;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crops: %w", err)
	}
	defer rows.Close()

	var crops []domain.Crop
	for rows.Next() {
		m, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crop row: %w", err)
		}
		crops = append(crops, mapping.ToDomainCrop(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crop rows: %w", err)
	}
	return crops, nil
}

// UpdateCrop mutates an existing crop in place.
func (r *PgxCropRepository) UpdateCrop(ctx context.Context, crop domain.Crop) error {
	m := mapping.ToModelCrop(crop)

	query := `UPDATE cultura SET nome = $1, tipo = $2, ciclo = $3, unidade_medida = $4 WHERE id = $5;`
	tag, err := r.pool.Exec(ctx, query, m.Name, m.Type, m.Cycle, m.MeasureUnit, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update crop %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCrop removes a crop. Fails with ErrConflict while production areas
// still reference it.
func (r *PgxCropRepository) DeleteCrop(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cultura WHERE id = $1;`, id)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: crop %d is referenced by production areas", apperrors.ErrConflict, id)
		}
		return fmt.Errorf("failed to delete crop %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
