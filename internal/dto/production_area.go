package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductionAreaRequest defines the data for a planting-plan row.
type CreateProductionAreaRequest struct {
	PropertyID         int64           `json:"propertyID" binding:"required"`
	CropID             int64           `json:"cropID" binding:"required"`
	Area               decimal.Decimal `json:"area"`
	PlantedAt          *string         `json:"plantedAt"`          // YYYY-MM-DD
	EstimatedHarvestAt *string         `json:"estimatedHarvestAt"` // YYYY-MM-DD
	EstimatedYield     decimal.Decimal `json:"estimatedYield"`
}

// UpdateProductionAreaRequest defines the fields that may change on a row.
type UpdateProductionAreaRequest struct {
	CropID             *int64           `json:"cropID"`
	Area               *decimal.Decimal `json:"area"`
	PlantedAt          *string          `json:"plantedAt"`
	EstimatedHarvestAt *string          `json:"estimatedHarvestAt"`
	EstimatedYield     *decimal.Decimal `json:"estimatedYield"`
}

// ProductionAreaResponse mirrors domain.ProductionArea for API output.
type ProductionAreaResponse struct {
	ID                 int64           `json:"id"`
	PropertyID         int64           `json:"propertyID"`
	CropID             int64           `json:"cropID"`
	Area               decimal.Decimal `json:"area"`
	PlantedAt          string          `json:"plantedAt,omitempty"`
	EstimatedHarvestAt string          `json:"estimatedHarvestAt,omitempty"`
	EstimatedYield     decimal.Decimal `json:"estimatedYield"`
}

// PlanningRowResponse is a production area joined with its crop name, the
// shape the planning screen consumes.
type PlanningRowResponse struct {
	ProductionAreaResponse
	CropName string `json:"cropName"`
}

// ToProductionAreaResponse converts a domain.ProductionArea to its API shape.
func ToProductionAreaResponse(pa *domain.ProductionArea) ProductionAreaResponse {
	res := ProductionAreaResponse{
		ID:             pa.ID,
		PropertyID:     pa.PropertyID,
		CropID:         pa.CropID,
		Area:           pa.Area,
		EstimatedYield: pa.EstimatedYield,
	}
	if pa.PlantedAt != nil {
		res.PlantedAt = pa.PlantedAt.Format(DateLayout)
	}
	if pa.EstimatedHarvestAt != nil {
		res.EstimatedHarvestAt = pa.EstimatedHarvestAt.Format(DateLayout)
	}
	return res
}

// ToListPlanningRowResponse converts joined planning rows.
func ToListPlanningRowResponse(rows []domain.PlanningRow) []PlanningRowResponse {
	res := make([]PlanningRowResponse, len(rows))
	for i := range rows {
		res[i] = PlanningRowResponse{
			ProductionAreaResponse: ToProductionAreaResponse(&rows[i].ProductionArea),
			CropName:               rows[i].CropName,
		}
	}
	return res
}
