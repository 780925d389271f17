package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodQuery bounds a reporting query to a date range. Both ends are
// optional; an open end means "from the beginning" / "until today".
type PeriodQuery struct {
	From string `form:"from"` // YYYY-MM-DD, inclusive
	To   string `form:"to"`   // YYYY-MM-DD, inclusive
}

// MonthQuery selects one calendar month for category rollup queries.
type MonthQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}

// AccountBalanceResponse is one row of the per-account balance view.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Code      string          `json:"code"`
	BankName  string          `json:"bankName"`
	Balance   decimal.Decimal `json:"balance"`
}

// CategorySummaryResponse is one row of the monthly category rollup.
type CategorySummaryResponse struct {
	Category string          `json:"category"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
}

// PeriodSummaryResponse backs the dashboard cards and pie chart.
type PeriodSummaryResponse struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Net          decimal.Decimal `json:"net"`
	IncomePct    decimal.Decimal `json:"incomePct"`
	ExpensePct   decimal.Decimal `json:"expensePct"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID: b.AccountID,
		Code:      b.Code,
		BankName:  b.BankName,
		Balance:   b.Balance,
	}
}

// ToListAccountBalanceResponse converts a slice of balances.
func ToListAccountBalanceResponse(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToAccountBalanceResponse(&balances[i])
	}
	return res
}

// ToCategorySummaryResponse converts a domain.CategorySummary.
func ToCategorySummaryResponse(s *domain.CategorySummary) CategorySummaryResponse {
	return CategorySummaryResponse{
		Category: s.Category,
		TotalIn:  s.TotalIn,
		TotalOut: s.TotalOut,
		Year:     s.Year,
		Month:    s.Month,
	}
}

// ToListCategorySummaryResponse converts a slice of rollup rows.
func ToListCategorySummaryResponse(summaries []domain.CategorySummary) []CategorySummaryResponse {
	res := make([]CategorySummaryResponse, len(summaries))
	for i := range summaries {
		res[i] = ToCategorySummaryResponse(&summaries[i])
	}
	return res
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary.
func ToPeriodSummaryResponse(s *domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		TotalBalance: s.TotalBalance,
		Income:       s.Income,
		Expenses:     s.Expenses,
		Net:          s.Net,
		IncomePct:    s.IncomePct,
		ExpensePct:   s.ExpensePct,
	}
}
