package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property mirrors the imovel_rural table.
type Property struct {
	ID                int64           `db:"id"`
	Code              string          `db:"cod_imovel"`
	Country           string          `db:"pais"`
	Currency          string          `db:"moeda"`
	CadITR            string          `db:"cad_itr"`
	CAEPF             string          `db:"caepf"`
	StateRegistration string          `db:"insc_estadual"`
	Name              string          `db:"nome_imovel"`
	Street            string          `db:"endereco"`
	Number            string          `db:"num"`
	Complement        string          `db:"compl"`
	District          string          `db:"bairro"`
	State             string          `db:"uf"`
	MunicipalityCode  string          `db:"cod_mun"`
	PostalCode        string          `db:"cep"`
	Exploitation      int             `db:"tipo_exploracao"`
	Participation     decimal.Decimal `db:"participacao"`
	TotalArea         decimal.Decimal `db:"area_total"`
	CultivatedArea    decimal.Decimal `db:"area_utilizada"`
	RegisteredAt      time.Time       `db:"data_cadastro"`
}
