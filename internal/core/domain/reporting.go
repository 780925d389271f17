package domain

import "github.com/shopspring/decimal"

// AccountBalance is one row of the saldo_contas view: the signed current
// balance of a bank account, taken from its latest ledger entry.
type AccountBalance struct {
	AccountID int64           `json:"accountID"`
	Code      string          `json:"code"`
	BankName  string          `json:"bankName"`
	Balance   decimal.Decimal `json:"balance"` // signed; zero when the account has no entries
}

// CategorySummary is one row of the resumo_categorias view: total inflow and
// outflow for a category in a calendar month.
type CategorySummary struct {
	Category string          `json:"category"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
}

// PeriodSummary backs the dashboard cards and pie chart: income, expenses and
// net result over a date range, plus the total current balance across all
// accounts.
type PeriodSummary struct {
	TotalBalance decimal.Decimal `json:"totalBalance"` // sum of saldo_contas
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Net          decimal.Decimal `json:"net"`
	IncomePct    decimal.Decimal `json:"incomePct"`
	ExpensePct   decimal.Decimal `json:"expensePct"`
}
