package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	"github.com/primeonhub/agrocontabil_app/internal/models"
	"github.com/primeonhub/agrocontabil_app/internal/utils/accounting"
	"github.com/primeonhub/agrocontabil_app/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerColumns = `id, data, cod_imovel, cod_conta, num_doc, tipo_doc, historico,
	id_participante, tipo_lanc, valor_entrada, valor_saida, saldo_final, natureza_saldo, categoria,
	area_afetada`

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.ID, &m.Date, &m.PropertyID, &m.AccountID, &m.DocumentNumber, &m.DocumentType,
		&m.Description, &m.CounterpartyID, &m.EntryType, &m.AmountIn, &m.AmountOut,
		&m.FinalBalance, &m.Nature, &m.Category, &m.ProductionAreaID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry appends an entry to its account's running-balance chain.
//
// Concurrent inserts against the same account must not read the same
// predecessor, so the whole lookup-then-insert runs in one transaction that
// first locks the account row. The predecessor is the account's entry with
// the highest id; entry date plays no part in chain order.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM conta_bancaria WHERE id = $1 FOR UPDATE;`, m.AccountID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bank account %d does not exist", apperrors.ErrValidation, m.AccountID)
		}
		return nil, fmt.Errorf("failed to lock bank account %d: %w", m.AccountID, err)
	}

	prior := decimal.Zero
	var prevFinal decimal.Decimal
	var prevNature string
	err = tx.QueryRow(ctx,
		`SELECT saldo_final, natureza_saldo FROM lancamento WHERE cod_conta = $1 ORDER BY id DESC LIMIT 1;`,
		m.AccountID,
	).Scan(&prevFinal, &prevNature)
	switch {
	case err == nil:
		prior = accounting.SignedBalance(prevFinal, domain.BalanceNature(prevNature))
	case errors.Is(err, pgx.ErrNoRows):
		// First entry for the account: chain starts at zero.
	default:
		return nil, fmt.Errorf("failed to read latest entry for account %d: %w", m.AccountID, err)
	}

	final, nature := accounting.NextBalance(prior, m.AmountIn, m.AmountOut)
	m.FinalBalance = final
	m.Nature = string(nature)

	query := `
		INSERT INTO lancamento (data, cod_imovel, cod_conta, num_doc, tipo_doc, historico,
			id_participante, tipo_lanc, valor_entrada, valor_saida, saldo_final, natureza_saldo, categoria,
			area_afetada)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, query,
		m.Date, m.PropertyID, m.AccountID, m.DocumentNumber, m.DocumentType, m.Description,
		m.CounterpartyID, m.EntryType, m.AmountIn, m.AmountOut, m.FinalBalance, m.Nature, m.Category,
		m.ProductionAreaID,
	).Scan(&m.ID)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return nil, fmt.Errorf("%w: property, participant or production area does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainLedgerEntry(m)
	return &d, nil
}

// FindEntryByID retrieves a single entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM lancamento WHERE id = $1;`

	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by ID %d: %w", id, err)
	}

	d := mapping.ToDomainLedgerEntry(*m)
	return &d, nil
}

// ListEntries retrieves entries in the filter window, newest entry date first,
// with display names resolved. The participant join is outer because the
// reference is optional.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.LedgerEntryRow, error) {
	query := `
		SELECT l.id, l.data, l.cod_imovel, l.cod_conta, l.num_doc, l.tipo_doc, l.historico,
			l.id_participante, l.tipo_lanc, l.valor_entrada, l.valor_saida, l.saldo_final,
			l.natureza_saldo, l.categoria, l.area_afetada,
			i.nome_imovel, c.cod_conta, c.nome_banco, COALESCE(p.nome, '')
		FROM lancamento l
		JOIN imovel_rural i ON i.id = l.cod_imovel
		JOIN conta_bancaria c ON c.id = l.cod_conta
		LEFT JOIN participante p ON p.id = l.id_participante
		WHERE 1=1
	`
	args := []any{}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND l.data >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND l.data <= $%d", len(args))
	}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += fmt.Sprintf(" AND l.cod_conta = $%d", len(args))
	}
	if filter.PropertyID != nil {
		args = append(args, *filter.PropertyID)
		query += fmt.Sprintf(" AND l.cod_imovel = $%d", len(args))
	}
	query += " ORDER BY l.data DESC, l.id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var result []domain.LedgerEntryRow
	for rows.Next() {
		var m models.LedgerEntry
		var propertyName, accountCode, bankName, counterpartyName string
		err := rows.Scan(
			&m.ID, &m.Date, &m.PropertyID, &m.AccountID, &m.DocumentNumber, &m.DocumentType,
			&m.Description, &m.CounterpartyID, &m.EntryType, &m.AmountIn, &m.AmountOut,
			&m.FinalBalance, &m.Nature, &m.Category, &m.ProductionAreaID,
			&propertyName, &accountCode, &bankName, &counterpartyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		result = append(result, domain.LedgerEntryRow{
			LedgerEntry:      mapping.ToDomainLedgerEntry(m),
			PropertyName:     propertyName,
			AccountCode:      accountCode,
			BankName:         bankName,
			CounterpartyName: counterpartyName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return result, nil
}

// ListAllEntries retrieves every entry in insertion order, as the export
// writers expect.
func (r *PgxLedgerRepository) ListAllEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM lancamento ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

// UpdateEntry rewrites an entry in place. The caller supplies the already
// derived balance pair; no other entry is touched.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		UPDATE lancamento
		SET data = $1, cod_imovel = $2, cod_conta = $3, num_doc = $4, tipo_doc = $5, historico = $6,
			id_participante = $7, tipo_lanc = $8, valor_entrada = $9, valor_saida = $10,
			saldo_final = $11, natureza_saldo = $12, categoria = $13, area_afetada = $14
		WHERE id = $15;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Date, m.PropertyID, m.AccountID, m.DocumentNumber, m.DocumentType, m.Description,
		m.CounterpartyID, m.EntryType, m.AmountIn, m.AmountOut, m.FinalBalance, m.Nature, m.Category,
		m.ProductionAreaID, m.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgFKViolation {
			return fmt.Errorf("%w: property, account, participant or production area does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update ledger entry %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry. Later entries in the account's chain keep
// their stored balances.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM lancamento WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
