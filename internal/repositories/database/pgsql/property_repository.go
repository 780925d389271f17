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

type PgxPropertyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPropertyRepository creates a new repository for property data.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepository {
	return &PgxPropertyRepository{pool: pool}
}

var _ portsrepo.PropertyRepository = (*PgxPropertyRepository)(nil)

const propertyColumns = `id, cod_imovel, pais, moeda, cad_itr, caepf, insc_estadual, nome_imovel,
	endereco, num, compl, bairro, uf, cod_mun, cep, tipo_exploracao, participacao,
	area_total, area_utilizada, data_cadastro`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var m models.Property
	err := row.Scan(
		&m.ID, &m.Code, &m.Country, &m.Currency, &m.CadITR, &m.CAEPF, &m.StateRegistration,
		&m.Name, &m.Street, &m.Number, &m.Complement, &m.District, &m.State,
		&m.MunicipalityCode, &m.PostalCode, &m.Exploitation, &m.Participation,
		&m.TotalArea, &m.CultivatedArea, &m.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProperty inserts a new property and returns it with the generated ID.
func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) (*domain.Property, error) {
	m := mapping.ToModelProperty(property)

	query := `
		INSERT INTO imovel_rural (cod_imovel, pais, moeda, cad_itr, caepf, insc_estadual, nome_imovel,
			endereco, num, compl, bairro, uf, cod_mun, cep, tipo_exploracao, participacao,
			area_total, area_utilizada, data_cadastro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		m.Code, m.Country, m.Currency, m.CadITR, m.CAEPF, m.StateRegistration, m.Name,
		m.Street, m.Number, m.Complement, m.District, m.State, m.MunicipalityCode, m.PostalCode,
		m.Exploitation, m.Participation, m.TotalArea, m.CultivatedArea, m.RegisteredAt,
	).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: property with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return nil, fmt.Errorf("failed to save property %s: %w", m.Code, err)
	}

	d := mapping.ToDomainProperty(m)
	return &d, nil
}

// FindPropertyByID retrieves a property by its ID.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM imovel_rural WHERE id = $1;`

	m, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property by ID %d: %w", id, err)
	}

	d := mapping.ToDomainProperty(*m)
	return &d, nil
}

// ListProperties retrieves properties ordered by name. A non-empty search
// filters by substring match on code or name, case-insensitive.
func (r *PgxPropertyRepository) ListProperties(ctx context.Context, search string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM imovel_rural`
	args := []any{}
	if search != "" {
		query += ` WHERE cod_imovel ILIKE $1 OR nome_imovel ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY nome_imovel;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		m, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, mapping.ToDomainProperty(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}
	return properties, nil
}

// UpdateProperty mutates an existing property in place.
func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)

	query := `
		UPDATE imovel_rural
		SET cod_imovel = $1, cad_itr = $2, caepf = $3, insc_estadual = $4, nome_imovel = $5,
			endereco = $6, num = $7, compl = $8, bairro = $9, uf = $10, cod_mun = $11, cep = $12,
			tipo_exploracao = $13, participacao = $14, area_total = $15, area_utilizada = $16
		WHERE id = $17;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Code, m.CadITR, m.CAEPF, m.StateRegistration, m.Name,
		m.Street, m.Number, m.Complement, m.District, m.State, m.MunicipalityCode, m.PostalCode,
		m.Exploitation, m.Participation, m.TotalArea, m.CultivatedArea,
		m.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: property with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update property %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProperty removes a property. The schema declares RESTRICT on every
// referencing table, so a property still in use fails with ErrConflict.
func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM imovel_rural WHERE id = $1;`, id)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: property %d is referenced by entries, production areas or stock", apperrors.ErrConflict, id)
		}
		return fmt.Errorf("failed to delete property %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
