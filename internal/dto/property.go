package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to register a rural property.
type CreatePropertyRequest struct {
	Code              string           `json:"code" binding:"required"`
	Country           string           `json:"country"`
	Currency          string           `json:"currency"`
	CadITR            string           `json:"cadITR"`
	CAEPF             string           `json:"caepf"`
	StateRegistration string           `json:"stateRegistration"`
	Name              string           `json:"name" binding:"required"`
	Street            string           `json:"street" binding:"required"`
	Number            string           `json:"number"`
	Complement        string           `json:"complement"`
	District          string           `json:"district" binding:"required"`
	State             string           `json:"state" binding:"required"`
	MunicipalityCode  string           `json:"municipalityCode" binding:"required"`
	PostalCode        string           `json:"postalCode" binding:"required"`
	Exploitation      int              `json:"exploitation" binding:"required,min=1,max=6"`
	Participation     *decimal.Decimal `json:"participation"` // defaults to 100
	TotalArea         decimal.Decimal  `json:"totalArea"`
	CultivatedArea    decimal.Decimal  `json:"cultivatedArea"`
}

// UpdatePropertyRequest defines the fields that may change on a property.
// Pointers distinguish "not provided" from zero values.
type UpdatePropertyRequest struct {
	Code              *string          `json:"code"`
	CadITR            *string          `json:"cadITR"`
	CAEPF             *string          `json:"caepf"`
	StateRegistration *string          `json:"stateRegistration"`
	Name              *string          `json:"name"`
	Street            *string          `json:"street"`
	Number            *string          `json:"number"`
	Complement        *string          `json:"complement"`
	District          *string          `json:"district"`
	State             *string          `json:"state"`
	MunicipalityCode  *string          `json:"municipalityCode"`
	PostalCode        *string          `json:"postalCode"`
	Exploitation      *int             `json:"exploitation"`
	Participation     *decimal.Decimal `json:"participation"`
	TotalArea         *decimal.Decimal `json:"totalArea"`
	CultivatedArea    *decimal.Decimal `json:"cultivatedArea"`
}

// PropertyResponse mirrors domain.Property for API output.
type PropertyResponse struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
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
	State             string          `json:"state"`
	MunicipalityCode  string          `json:"municipalityCode"`
	PostalCode        string          `json:"postalCode"`
	Exploitation      int             `json:"exploitation"`
	Participation     decimal.Decimal `json:"participation"`
	TotalArea         decimal.Decimal `json:"totalArea"`
	CultivatedArea    decimal.Decimal `json:"cultivatedArea"`
	RegisteredAt      string          `json:"registeredAt"`
}

// ToPropertyResponse converts a domain.Property to its API shape.
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:                p.ID,
		Code:              p.Code,
		Country:           p.Country,
		Currency:          p.Currency,
		CadITR:            p.CadITR,
		CAEPF:             p.CAEPF,
		StateRegistration: p.StateRegistration,
		Name:              p.Name,
		Street:            p.Street,
		Number:            p.Number,
		Complement:        p.Complement,
		District:          p.District,
		State:             p.State,
		MunicipalityCode:  p.MunicipalityCode,
		PostalCode:        p.PostalCode,
		Exploitation:      int(p.Exploitation),
		Participation:     p.Participation,
		TotalArea:         p.TotalArea,
		CultivatedArea:    p.CultivatedArea,
		RegisteredAt:      p.RegisteredAt.Format(DateLayout),
	}
}

// ToListPropertyResponse converts a slice of properties.
func ToListPropertyResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i := range properties {
		res[i] = ToPropertyResponse(&properties[i])
	}
	return res
}
