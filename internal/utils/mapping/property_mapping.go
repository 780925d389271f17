package mapping

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/models"
)

// ToModelProperty converts a domain.Property to its DB representation.
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		ID:                d.ID,
		Code:              d.Code,
		Country:           d.Country,
		Currency:          d.Currency,
		CadITR:            d.CadITR,
		CAEPF:             d.CAEPF,
		StateRegistration: d.StateRegistration,
		Name:              d.Name,
		Street:            d.Street,
		Number:            d.Number,
		Complement:        d.Complement,
		District:          d.District,
		State:             d.State,
		MunicipalityCode:  d.MunicipalityCode,
		PostalCode:        d.PostalCode,
		Exploitation:      int(d.Exploitation),
		Participation:     d.Participation,
		TotalArea:         d.TotalArea,
		CultivatedArea:    d.CultivatedArea,
		RegisteredAt:      d.RegisteredAt,
	}
}

// ToDomainProperty converts a DB row back to the domain representation.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		ID:                m.ID,
		Code:              m.Code,
		Country:           m.Country,
		Currency:          m.Currency,
		CadITR:            m.CadITR,
		CAEPF:             m.CAEPF,
		StateRegistration: m.StateRegistration,
		Name:              m.Name,
		Street:            m.Street,
		Number:            m.Number,
		Complement:        m.Complement,
		District:          m.District,
		State:             m.State,
		MunicipalityCode:  m.MunicipalityCode,
		PostalCode:        m.PostalCode,
		Exploitation:      domain.ExploitationType(m.Exploitation),
		Participation:     m.Participation,
		TotalArea:         m.TotalArea,
		CultivatedArea:    m.CultivatedArea,
		RegisteredAt:      m.RegisteredAt,
	}
}
