package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account (conta bancária) that ledger entries
// debit and credit. The current balance is never stored here; it is derived
// from the latest ledger entry referencing the account.
type BankAccount struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"` // cod_conta, unique
	Country        string          `json:"country"`
	BankCode       string          `json:"bankCode"`
	BankName       string          `json:"bankName"`
	Branch         string          `json:"branch"`
	AccountNumber  string          `json:"accountNumber"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // signed
	OpenedAt       time.Time       `json:"openedAt"`
}
