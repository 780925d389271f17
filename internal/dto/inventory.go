package dto

import (
	"time"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines the data for a stock item.
type CreateInventoryItemRequest struct {
	Product         string          `json:"product" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	MeasureUnit     string          `json:"measureUnit"`
	UnitValue       decimal.Decimal `json:"unitValue"`
	StorageLocation string          `json:"storageLocation"`
	EnteredAt       *string         `json:"enteredAt"` // YYYY-MM-DD, defaults to today
	ExpiresAt       *string         `json:"expiresAt"` // YYYY-MM-DD
	PropertyID      *int64          `json:"propertyID"`
}

// UpdateInventoryItemRequest defines the fields that may change on an item.
type UpdateInventoryItemRequest struct {
	Product         *string          `json:"product"`
	Quantity        *decimal.Decimal `json:"quantity"`
	MeasureUnit     *string          `json:"measureUnit"`
	UnitValue       *decimal.Decimal `json:"unitValue"`
	StorageLocation *string          `json:"storageLocation"`
	ExpiresAt       *string          `json:"expiresAt"`
	PropertyID      *int64           `json:"propertyID"`
}

// InventoryItemResponse mirrors domain.InventoryItem for API output, with the
// expiry status computed against the current day.
type InventoryItemResponse struct {
	ID              int64           `json:"id"`
	Product         string          `json:"product"`
	Quantity        decimal.Decimal `json:"quantity"`
	MeasureUnit     string          `json:"measureUnit"`
	UnitValue       decimal.Decimal `json:"unitValue"`
	StorageLocation string          `json:"storageLocation"`
	EnteredAt       string          `json:"enteredAt"`
	ExpiresAt       string          `json:"expiresAt,omitempty"`
	PropertyID      *int64          `json:"propertyID,omitempty"`
	Status          string          `json:"status"`
}

// ToInventoryItemResponse converts a domain.InventoryItem, classifying its
// expiry status relative to now.
func ToInventoryItemResponse(it *domain.InventoryItem, now time.Time) InventoryItemResponse {
	res := InventoryItemResponse{
		ID:              it.ID,
		Product:         it.Product,
		Quantity:        it.Quantity,
		MeasureUnit:     it.MeasureUnit,
		UnitValue:       it.UnitValue,
		StorageLocation: it.StorageLocation,
		EnteredAt:       it.EnteredAt.Format(DateLayout),
		PropertyID:      it.PropertyID,
		Status:          string(it.StatusAt(now)),
	}
	if it.ExpiresAt != nil {
		res.ExpiresAt = it.ExpiresAt.Format(DateLayout)
	}
	return res
}

// ToListInventoryItemResponse converts a slice of items.
func ToListInventoryItemResponse(items []domain.InventoryItem, now time.Time) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i := range items {
		res[i] = ToInventoryItemResponse(&items[i], now)
	}
	return res
}
