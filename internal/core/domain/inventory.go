package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is the query-time classification of an inventory item against
// its expiry date. It is never stored.
type StockStatus string

const (
	StockExpired      StockStatus = "EXPIRED"
	StockExpiringSoon StockStatus = "EXPIRING_SOON"
	StockNormal       StockStatus = "NORMAL"
)

// expiryWarningWindow is how far ahead an expiry date counts as "expiring soon".
const expiryWarningWindow = 30 * 24 * time.Hour

// InventoryItem represents a stored product (estoque), optionally tied to a
// property.
type InventoryItem struct {
	ID              int64           `json:"id"`
	Product         string          `json:"product"`
	Quantity        decimal.Decimal `json:"quantity"`
	MeasureUnit     string          `json:"measureUnit"`
	UnitValue       decimal.Decimal `json:"unitValue"`
	StorageLocation string          `json:"storageLocation"`
	EnteredAt       time.Time       `json:"enteredAt"`
	ExpiresAt       *time.Time      `json:"expiresAt"`
	PropertyID      *int64          `json:"propertyID"`
}

// StatusAt classifies the item relative to the given reference date:
// expired if the expiry date is before it, expiring soon if within the next
// 30 days, normal otherwise (or when no expiry date is set).
func (i InventoryItem) StatusAt(today time.Time) StockStatus {
	if i.ExpiresAt == nil {
		return StockNormal
	}
	// Each value's calendar day in its own zone; Truncate would cut against
	// the UTC epoch and shift the boundary for non-UTC callers.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	exp := time.Date(i.ExpiresAt.Year(), i.ExpiresAt.Month(), i.ExpiresAt.Day(), 0, 0, 0, 0, time.UTC)
	if exp.Before(day) {
		return StockExpired
	}
	if !exp.After(day.Add(expiryWarningWindow)) {
		return StockExpiringSoon
	}
	return StockNormal
}
