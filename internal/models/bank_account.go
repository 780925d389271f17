package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount mirrors the conta_bancaria table.
type BankAccount struct {
	ID             int64           `db:"id"`
	Code           string          `db:"cod_conta"`
	Country        string          `db:"pais_cta"`
	BankCode       string          `db:"banco"`
	BankName       string          `db:"nome_banco"`
	Branch         string          `db:"agencia"`
	AccountNumber  string          `db:"num_conta"`
	OpeningBalance decimal.Decimal `db:"saldo_inicial"`
	OpenedAt       time.Time       `db:"data_abertura"`
}
