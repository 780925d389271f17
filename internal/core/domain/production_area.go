package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionArea is a parcel of a property planted with a specific crop
// (área de produção). Pure registry record, no derivation.
type ProductionArea struct {
	ID                 int64           `json:"id"`
	PropertyID         int64           `json:"propertyID"`
	CropID             int64           `json:"cropID"`
	Area               decimal.Decimal `json:"area"` // hectares
	PlantedAt          *time.Time      `json:"plantedAt"`
	EstimatedHarvestAt *time.Time      `json:"estimatedHarvestAt"`
	EstimatedYield     decimal.Decimal `json:"estimatedYield"`
}

// PlanningRow is a production area joined with its crop name, as shown on
// the planning listing.
type PlanningRow struct {
	ProductionArea
	CropName string `json:"cropName"`
}
