package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data for a new bookkeeping entry.
// FinalBalance and Nature are never accepted from the client; they are
// derived inside the insert transaction.
type CreateLedgerEntryRequest struct {
	Date           string          `json:"date" binding:"required"` // YYYY-MM-DD
	PropertyID     int64           `json:"propertyID" binding:"required"`
	AccountID      int64           `json:"accountID" binding:"required"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentType   int             `json:"documentType" binding:"required,min=1,max=4"`
	Description    string          `json:"description" binding:"required"`
	CounterpartyID *int64          `json:"counterpartyID"`
	EntryType      int             `json:"entryType" binding:"required,min=1,max=3"`
	AmountIn       decimal.Decimal `json:"amountIn"`
	AmountOut      decimal.Decimal `json:"amountOut"`
	Category       string          `json:"category"`

	// ProductionAreaID optionally ties the entry to the production area it
	// affected.
	ProductionAreaID *int64 `json:"productionAreaID"`
}

// UpdateLedgerEntryRequest defines the fields that may change on an entry.
// Balance fields are recomputed from the entry's own amounts on every update.
type UpdateLedgerEntryRequest struct {
	Date           *string          `json:"date"`
	PropertyID     *int64           `json:"propertyID"`
	AccountID      *int64           `json:"accountID"`
	DocumentNumber *string          `json:"documentNumber"`
	DocumentType   *int             `json:"documentType"`
	Description    *string          `json:"description"`
	CounterpartyID *int64           `json:"counterpartyID"`
	EntryType      *int             `json:"entryType"`
	AmountIn       *decimal.Decimal `json:"amountIn"`
	AmountOut      *decimal.Decimal `json:"amountOut"`
	Category       *string          `json:"category"`

	ProductionAreaID *int64 `json:"productionAreaID"`
}

// ListLedgerEntriesParams are the optional filters accepted by the listing
// endpoint, bound from the query string.
type ListLedgerEntriesParams struct {
	From       string `form:"from"` // YYYY-MM-DD, inclusive
	To         string `form:"to"`   // YYYY-MM-DD, inclusive
	AccountID  *int64 `form:"accountID"`
	PropertyID *int64 `form:"propertyID"`
}

// LedgerEntryResponse mirrors domain.LedgerEntry for API output.
type LedgerEntryResponse struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	PropertyID     int64           `json:"propertyID"`
	AccountID      int64           `json:"accountID"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentType   int             `json:"documentType"`
	Description    string          `json:"description"`
	CounterpartyID *int64          `json:"counterpartyID,omitempty"`
	EntryType      int             `json:"entryType"`
	AmountIn       decimal.Decimal `json:"amountIn"`
	AmountOut      decimal.Decimal `json:"amountOut"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	Nature         string          `json:"nature"`
	Category       string          `json:"category"`

	ProductionAreaID *int64 `json:"productionAreaID,omitempty"`
}

// LedgerEntryRowResponse is an entry joined with display names and enum
// labels, the shape the listing screen consumes.
type LedgerEntryRowResponse struct {
	LedgerEntryResponse
	PropertyName      string `json:"propertyName"`
	AccountCode       string `json:"accountCode"`
	BankName          string `json:"bankName"`
	CounterpartyName  string `json:"counterpartyName"`
	EntryTypeLabel    string `json:"entryTypeLabel"`
	DocumentTypeLabel string `json:"documentTypeLabel"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its API shape.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             e.ID,
		Date:           e.Date.Format(DateLayout),
		PropertyID:     e.PropertyID,
		AccountID:      e.AccountID,
		DocumentNumber: e.DocumentNumber,
		DocumentType:   int(e.DocumentType),
		Description:    e.Description,
		CounterpartyID: e.CounterpartyID,
		EntryType:      int(e.EntryType),
		AmountIn:       e.AmountIn,
		AmountOut:      e.AmountOut,
		FinalBalance:   e.FinalBalance,
		Nature:         string(e.Nature),
		Category:       e.Category,

		ProductionAreaID: e.ProductionAreaID,
	}
}

// ToListLedgerEntryRowResponse converts joined listing rows.
func ToListLedgerEntryRowResponse(rows []domain.LedgerEntryRow) []LedgerEntryRowResponse {
	res := make([]LedgerEntryRowResponse, len(rows))
	for i := range rows {
		res[i] = LedgerEntryRowResponse{
			LedgerEntryResponse: ToLedgerEntryResponse(&rows[i].LedgerEntry),
			PropertyName:        rows[i].PropertyName,
			AccountCode:         rows[i].AccountCode,
			BankName:            rows[i].BankName,
			CounterpartyName:    rows[i].CounterpartyName,
			EntryTypeLabel:      rows[i].EntryType.Label(),
			DocumentTypeLabel:   rows[i].DocumentType.Label(),
		}
	}
	return res
}
