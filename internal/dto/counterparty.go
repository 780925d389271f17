package dto

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/utils/br"
)

// CreateCounterpartyRequest defines the data needed to register a participant.
// TaxID may arrive with display punctuation; it is normalised to digits before
// validation and stored raw.
type CreateCounterpartyRequest struct {
	TaxID string `json:"taxID" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Type  int    `json:"type" binding:"required,min=1,max=4"`
}

// UpdateCounterpartyRequest defines the fields that may change on a participant.
type UpdateCounterpartyRequest struct {
	TaxID *string `json:"taxID"`
	Name  *string `json:"name"`
	Type  *int    `json:"type"`
}

// CounterpartyResponse mirrors domain.Counterparty for API output.
// FormattedTaxID carries the punctuated display form; the stored value is
// always the raw digits.
type CounterpartyResponse struct {
	ID             int64  `json:"id"`
	TaxID          string `json:"taxID"`
	FormattedTaxID string `json:"formattedTaxID"`
	Name           string `json:"name"`
	Type           int    `json:"type"`
	TypeLabel      string `json:"typeLabel"`
	RegisteredAt   string `json:"registeredAt"`
}

// ToCounterpartyResponse converts a domain.Counterparty to its API shape.
func ToCounterpartyResponse(cp *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:             cp.ID,
		TaxID:          cp.TaxID,
		FormattedTaxID: br.FormatTaxID(cp.TaxID),
		Name:           cp.Name,
		Type:           int(cp.Type),
		TypeLabel:      cp.Type.Label(),
		RegisteredAt:   cp.RegisteredAt.Format(DateLayout),
	}
}

// ToListCounterpartyResponse converts a slice of participants.
func ToListCounterpartyResponse(cps []domain.Counterparty) []CounterpartyResponse {
	res := make([]CounterpartyResponse, len(cps))
	for i := range cps {
		res[i] = ToCounterpartyResponse(&cps[i])
	}
	return res
}
