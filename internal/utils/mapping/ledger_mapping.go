package mapping

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its DB representation.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:             d.ID,
		Date:           d.Date,
		PropertyID:     d.PropertyID,
		AccountID:      d.AccountID,
		DocumentNumber: d.DocumentNumber,
		DocumentType:   int(d.DocumentType),
		Description:    d.Description,
		CounterpartyID: d.CounterpartyID,
		EntryType:      int(d.EntryType),
		AmountIn:       d.AmountIn,
		AmountOut:      d.AmountOut,
		FinalBalance:   d.FinalBalance,
		Nature:         string(d.Nature),
		Category:       d.Category,

		ProductionAreaID: d.ProductionAreaID,
	}
}

// ToDomainLedgerEntry converts a DB row back to the domain representation.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:             m.ID,
		Date:           m.Date,
		PropertyID:     m.PropertyID,
		AccountID:      m.AccountID,
		DocumentNumber: m.DocumentNumber,
		DocumentType:   domain.DocumentType(m.DocumentType),
		Description:    m.Description,
		CounterpartyID: m.CounterpartyID,
		EntryType:      domain.EntryType(m.EntryType),
		AmountIn:       m.AmountIn,
		AmountOut:      m.AmountOut,
		FinalBalance:   m.FinalBalance,
		Nature:         domain.BalanceNature(m.Nature),
		Category:       m.Category,

		ProductionAreaID: m.ProductionAreaID,
	}
}
