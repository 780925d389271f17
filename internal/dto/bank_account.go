package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Code           string          `json:"code" binding:"required"`
	Country        string          `json:"country"`
	BankCode       string          `json:"bankCode"`
	BankName       string          `json:"bankName" binding:"required"`
	Branch         string          `json:"branch" binding:"required"`
	AccountNumber  string          `json:"accountNumber" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpenedAt       *string         `json:"openedAt"` // YYYY-MM-DD, defaults to today
}

// UpdateBankAccountRequest defines the fields that may change on an account.
type UpdateBankAccountRequest struct {
	Code           *string          `json:"code"`
	BankCode       *string          `json:"bankCode"`
	BankName       *string          `json:"bankName"`
	Branch         *string          `json:"branch"`
	AccountNumber  *string          `json:"accountNumber"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// BankAccountResponse mirrors domain.BankAccount for API output.
type BankAccountResponse struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"`
	Country        string          `json:"country"`
	BankCode       string          `json:"bankCode"`
	BankName       string          `json:"bankName"`
	Branch         string          `json:"branch"`
	AccountNumber  string          `json:"accountNumber"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpenedAt       string          `json:"openedAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to its API shape.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:             a.ID,
		Code:           a.Code,
		Country:        a.Country,
		BankCode:       a.BankCode,
		BankName:       a.BankName,
		Branch:         a.Branch,
		AccountNumber:  a.AccountNumber,
		OpeningBalance: a.OpeningBalance,
		OpenedAt:       a.OpenedAt.Format(DateLayout),
	}
}

// ToListBankAccountResponse converts a slice of accounts.
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}
