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

type PgxProductionAreaRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductionAreaRepository creates a new repository for production area data.
func newPgxProductionAreaRepository(pool *pgxpool.Pool) portsrepo.ProductionAreaRepository {
	return &PgxProductionAreaRepository{pool: pool}
}

var _ portsrepo.ProductionAreaRepository = (*PgxProductionAreaRepository)(nil)

const productionAreaColumns = `id, imovel_id, cultura_id, area, data_plantio, data_colheita_estimada, produtividade_estimada`

func scanProductionArea(row pgx.Row) (*models.ProductionArea, error) {
	var m models.ProductionArea
	err := row.Scan(&m.ID, &m.PropertyID, &m.CropID, &m.Area, &m.PlantedAt, &m.EstimatedHarvestAt, &m.EstimatedYield)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProductionArea inserts a new planting row and returns it with the
// generated ID. A missing property or crop reference fails validation.
func (r *PgxProductionAreaRepository) SaveProductionArea(ctx context.Context, area domain.ProductionArea) (*domain.ProductionArea, error) {
	m := mapping.ToModelProductionArea(area)

	query := `
		INSERT INTO area_producao (imovel_id, cultura_id, area, data_plantio, data_colheita_estimada, produtividade_estimada)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		m.PropertyID, m.CropID, m.Area, m.PlantedAt, m.EstimatedHarvestAt, m.EstimatedYield,
	).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return nil, fmt.Errorf("%w: property or crop does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save production area: %w", err)
	}

	d := mapping.ToDomainProductionArea(m)
	return &d, nil
}

// FindProductionAreaByID retrieves a planting row by its ID.
func (r *PgxProductionAreaRepository) FindProductionAreaByID(ctx context.Context, id int64) (*domain.ProductionArea, error) {
	query := `SELECT ` + productionAreaColumns + ` FROM area_producao WHERE id = $1;`

	m, err := scanProductionArea(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find production area by ID %d: %w", id, err)
	}

	d := mapping.ToDomainProductionArea(*m)
	return &d, nil
}

// ListProductionAreas retrieves all planting rows, newest planting first.
func (r *PgxProductionAreaRepository) ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	query := `SELECT ` + productionAreaColumns + ` FROM area_producao ORDER BY data_plantio DESC NULLS LAST, id DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query production areas: %w", err)
	}
	defer rows.Close()

	var areas []domain.ProductionArea
	for rows.Next() {
		m, err := scanProductionArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production area row: %w", err)
		}
		areas = append(areas, mapping.ToDomainProductionArea(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating production area rows: %w", err)
	}
	return areas, nil
}

// ListPlanning retrieves planting rows joined with their crop names.
func (r *PgxProductionAreaRepository) ListPlanning(ctx context.Context) ([]domain.PlanningRow, error) {
	query := `
		SELECT ap.id, ap.imovel_id, ap.cultura_id, ap.area, ap.data_plantio,
			ap.data_colheita_estimada, ap.produtividade_estimada, c.nome
		FROM area_producao ap
		JOIN cultura c ON c.id = ap.cultura_id
		ORDER BY ap.data_plantio DESC NULLS LAST, ap.id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query planning rows: %w", err)
	}
	defer rows.Close()

	var planning []domain.PlanningRow
	for rows.Next() {
		var m models.ProductionArea
		var cropName string
		err := rows.Scan(&m.ID, &m.PropertyID, &m.CropID, &m.Area, &m.PlantedAt, &m.EstimatedHarvestAt, &m.EstimatedYield, &cropName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planning row: %w", err)
		}
		planning = append(planning, domain.PlanningRow{
			ProductionArea: mapping.ToDomainProductionArea(m),
			CropName:       cropName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planning rows: %w", err)
	}
	return planning, nil
}

// UpdateProductionArea mutates an existing planting row in place.
func (r *PgxProductionAreaRepository) UpdateProductionArea(ctx context.Context, area domain.ProductionArea) error {
	m := mapping.ToModelProductionArea(area)

	query := `
		UPDATE area_producao
		SET cultura_id = $1, area = $2, data_plantio = $3, data_colheita_estimada = $4, produtividade_estimada = $5
		WHERE id = $6;
	`
	tag, err := r.pool.Exec(ctx, query, m.CropID, m.Area, m.PlantedAt, m.EstimatedHarvestAt, m.EstimatedYield, m.ID)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: crop does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update production area %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProductionArea removes a planting row.
func (r *PgxProductionAreaRepository) DeleteProductionArea(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM area_producao WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete production area %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
