package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the lancamento table. The original LCDPR layout names
// the property and account foreign keys cod_imovel/cod_conta even though
// they hold surrogate ids, and that naming is kept in the schema.
type LedgerEntry struct {
	ID             int64           `db:"id"`
	Date           time.Time       `db:"data"`
	PropertyID     int64           `db:"cod_imovel"`
	AccountID      int64           `db:"cod_conta"`
	DocumentNumber string          `db:"num_doc"`
	DocumentType   int             `db:"tipo_doc"`
	Description    string          `db:"historico"`
	CounterpartyID *int64          `db:"id_participante"`
	EntryType      int             `db:"tipo_lanc"`
	AmountIn       decimal.Decimal `db:"valor_entrada"`
	AmountOut      decimal.Decimal `db:"valor_saida"`
	FinalBalance   decimal.Decimal `db:"saldo_final"`
	Nature         string          `db:"natureza_saldo"`
	Category       string          `db:"categoria"`

	// ProductionAreaID optionally ties the entry to the production area it
	// affected (area_afetada).
	ProductionAreaID *int64 `db:"area_afetada"`
}
