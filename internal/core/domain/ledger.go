package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry (tipo de lançamento).
type EntryType int

const (
	EntryIncome  EntryType = 1 // receita
	EntryExpense EntryType = 2 // despesa
	EntryAdvance EntryType = 3 // adiantamento
)

// Valid reports whether the entry type is one of the known values.
func (t EntryType) Valid() bool {
	return t >= EntryIncome && t <= EntryAdvance
}

// Label returns the Portuguese display label used in listings.
func (t EntryType) Label() string {
	switch t {
	case EntryIncome:
		return "Receita"
	case EntryExpense:
		return "Despesa"
	default:
		return "Adiantamento"
	}
}

// DocumentType classifies the supporting document of a ledger entry.
type DocumentType int

const (
	DocumentInvoice DocumentType = 1 // nota fiscal
	DocumentReceipt DocumentType = 2 // recibo
	DocumentBill    DocumentType = 3 // boleto
	DocumentOther   DocumentType = 4
)

// Valid reports whether the document type is one of the known values.
func (t DocumentType) Valid() bool {
	return t >= DocumentInvoice && t <= DocumentOther
}

// Label returns the Portuguese display label used in listings.
func (t DocumentType) Label() string {
	switch t {
	case DocumentInvoice:
		return "Nota Fiscal"
	case DocumentReceipt:
		return "Recibo"
	case DocumentBill:
		return "Boleto"
	default:
		return "Outros"
	}
}

// BalanceNature is the sign flag stored next to saldo_final: "P" when the
// underlying signed running balance is >= 0, "N" otherwise.
type BalanceNature string

const (
	NaturePositive BalanceNature = "P"
	NatureNegative BalanceNature = "N"
)

// LedgerEntry is a single bookkeeping entry (lançamento) against one
// property and one bank account. FinalBalance and Nature are derived at
// write time and never independently editable: together they encode the
// account's signed running balance after this entry.
type LedgerEntry struct {
	ID             int64           `json:"id"`
	Date           time.Time       `json:"date"`
	PropertyID     int64           `json:"propertyID"`
	AccountID      int64           `json:"accountID"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentType   DocumentType    `json:"documentType"`
	Description    string          `json:"description"` // histórico
	CounterpartyID *int64          `json:"counterpartyID"`
	EntryType      EntryType       `json:"entryType"`
	AmountIn       decimal.Decimal `json:"amountIn"`  // valor_entrada, >= 0
	AmountOut      decimal.Decimal `json:"amountOut"` // valor_saida, >= 0
	FinalBalance   decimal.Decimal `json:"finalBalance"` // saldo_final, >= 0
	Nature         BalanceNature   `json:"nature"`       // natureza_saldo
	Category       string          `json:"category"`

	// ProductionAreaID optionally ties the entry to the production area it
	// affected (area_afetada).
	ProductionAreaID *int64 `json:"productionAreaID"`
}

// SignedBalance returns the signed running balance this entry encodes.
func (e LedgerEntry) SignedBalance() decimal.Decimal {
	if e.Nature == NatureNegative {
		return e.FinalBalance.Neg()
	}
	return e.FinalBalance
}

// LedgerEntryRow is a ledger entry joined with display names for listing.
type LedgerEntryRow struct {
	LedgerEntry
	PropertyName     string `json:"propertyName"`
	AccountCode      string `json:"accountCode"`
	BankName         string `json:"bankName"`
	CounterpartyName string `json:"counterpartyName"`
}
