package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionArea mirrors the area_producao table.
type ProductionArea struct {
	ID                 int64           `db:"id"`
	PropertyID         int64           `db:"imovel_id"`
	CropID             int64           `db:"cultura_id"`
	Area               decimal.Decimal `db:"area"`
	PlantedAt          *time.Time      `db:"data_plantio"`
	EstimatedHarvestAt *time.Time      `db:"data_colheita_estimada"`
	EstimatedYield     decimal.Decimal `db:"produtividade_estimada"`
}
