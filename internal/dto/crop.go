package dto

import "github.com/primeonhub/agrocontabil_app/internal/core/domain"

// CreateCropRequest defines the data needed to register a crop lookup.
type CreateCropRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Cycle       string `json:"cycle"`
	MeasureUnit string `json:"measureUnit"`
}

// UpdateCropRequest defines the fields that may change on a crop.
type UpdateCropRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Cycle       *string `json:"cycle"`
	MeasureUnit *string `json:"measureUnit"`
}

// CropResponse mirrors domain.Crop for API output.
type CropResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cycle       string `json:"cycle"`
	MeasureUnit string `json:"measureUnit"`
}

// ToCropResponse converts a domain.Crop to its API shape.
func ToCropResponse(c *domain.Crop) CropResponse {
	return CropResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Cycle:       c.Cycle,
		MeasureUnit: c.MeasureUnit,
	}
}

// ToListCropResponse converts a slice of crops.
func ToListCropResponse(crops []domain.Crop) []CropResponse {
	res := make([]CropResponse, len(crops))
	for i := range crops {
		res[i] = ToCropResponse(&crops[i])
	}
	return res
}
