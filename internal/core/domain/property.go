package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExploitationType describes how a rural property is exploited, per the
// LCDPR table of exploitation codes.
type ExploitationType int

const (
	ExploitationIndividual  ExploitationType = 1
	ExploitationCondominium ExploitationType = 2
	ExploitationLeased      ExploitationType = 3
	ExploitationPartnership ExploitationType = 4
	ExploitationLoan        ExploitationType = 5
	ExploitationOther       ExploitationType = 6
)

// Valid reports whether the exploitation code is one of the known values.
func (t ExploitationType) Valid() bool {
	return t >= ExploitationIndividual && t <= ExploitationOther
}

// Property represents a rural immovable (imóvel rural) that ledger entries
// and production areas reference. Code is the user-facing business code,
// distinct from the surrogate ID.
type Property struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"` // cod_imovel, unique
	Country           string          `json:"country"`
	Currency          string          `json:"currency"`
	CadITR            string          `json:"cadITR"`
	CAEPF             string          `json:"caepf"`
	StateRegistration string          `json:"stateRegistration"`
	Name              string          `json:"name"`
	Street            string          `json:"street"`
	Number            string          `json:"number"`
	Complement        string          `json:"complement"`
	District          string          `json:"district"`
	State             string          `json:"state"` // UF
	MunicipalityCode  string          `json:"municipalityCode"`
	PostalCode        string          `json:"postalCode"`
	Exploitation      ExploitationType `json:"exploitation"`
	Participation     decimal.Decimal `json:"participation"` // ownership share, percent in [0,100]
	TotalArea         decimal.Decimal `json:"totalArea"`      // hectares
	CultivatedArea    decimal.Decimal `json:"cultivatedArea"` // hectares
	RegisteredAt      time.Time       `json:"registeredAt"`
}
