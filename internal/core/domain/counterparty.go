package domain

import "time"

// CounterpartyType classifies the other party of a ledger entry.
type CounterpartyType int

const (
	CounterpartyIndividual  CounterpartyType = 1 // pessoa física
	CounterpartyLegalEntity CounterpartyType = 2 // pessoa jurídica
	CounterpartyPublicBody  CounterpartyType = 3 // órgão público
	CounterpartyOther       CounterpartyType = 4
)

// Valid reports whether the counterparty type is one of the known values.
func (t CounterpartyType) Valid() bool {
	return t >= CounterpartyIndividual && t <= CounterpartyOther
}

// Label returns the short display label used in listings.
func (t CounterpartyType) Label() string {
	switch t {
	case CounterpartyIndividual:
		return "PF"
	case CounterpartyLegalEntity:
		return "PJ"
	case CounterpartyPublicBody:
		return "Órgão Público"
	default:
		return "Outros"
	}
}

// Counterparty represents a participant (participante): the person, company
// or public body on the other side of a ledger entry. TaxID holds the CPF
// (11 digits) or CNPJ (14 digits) exactly as supplied; display punctuation is
// a presentation concern and never stored.
type Counterparty struct {
	ID           int64            `json:"id"`
	TaxID        string           `json:"taxID"` // cpf_cnpj, unique
	Name         string           `json:"name"`
	Type         CounterpartyType `json:"type"`
	RegisteredAt time.Time        `json:"registeredAt"`
}
