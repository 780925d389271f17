package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem mirrors the estoque table.
type InventoryItem struct {
	ID              int64           `db:"id"`
	Product         string          `db:"produto"`
	Quantity        decimal.Decimal `db:"quantidade"`
	MeasureUnit     string          `db:"unidade_medida"`
	UnitValue       decimal.Decimal `db:"valor_unitario"`
	StorageLocation string          `db:"local_armazenamento"`
	EnteredAt       time.Time       `db:"data_entrada"`
	ExpiresAt       *time.Time      `db:"data_validade"`
	PropertyID      *int64          `db:"imovel_id"`
}
