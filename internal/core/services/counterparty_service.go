package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
	"github.com/primeonhub/agrocontabil_app/internal/utils/br"
)

type CounterpartyService struct {
	BaseService
	repo portsrepo.CounterpartyRepository
}

// NewCounterpartyService creates the participant service.
func NewCounterpartyService(repo portsrepo.CounterpartyRepository) *CounterpartyService {
	return &CounterpartyService{repo: repo}
}

var _ portssvc.CounterpartySvcFacade = (*CounterpartyService)(nil)

// normalizeTaxID strips punctuation and checks the digit count: 11 for CPF,
// 14 for CNPJ.
func normalizeTaxID(raw string) (string, error) {
	digits := br.DigitsOnly(raw)
	if len(digits) != 11 && len(digits) != 14 {
		return "", fmt.Errorf("%w: tax id must have 11 (CPF) or 14 (CNPJ) digits", apperrors.ErrValidation)
	}
	return digits, nil
}

// CreateCounterparty validates and persists a new participant.
func (s *CounterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error) {
	taxID, err := normalizeTaxID(req.TaxID)
	if err != nil {
		return nil, err
	}
	if !domain.CounterpartyType(req.Type).Valid() {
		return nil, fmt.Errorf("%w: unknown participant type %d", apperrors.ErrValidation, req.Type)
	}

	cp := domain.Counterparty{
		TaxID:        taxID,
		Name:         req.Name,
		Type:         domain.CounterpartyType(req.Type),
		RegisteredAt: today(),
	}

	saved, err := s.repo.SaveCounterparty(ctx, cp)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save participant", slog.String("name", req.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Participant created", slog.Int64("counterparty_id", saved.ID))
	return saved, nil
}

// GetCounterpartyByID retrieves a participant by its ID.
func (s *CounterpartyService) GetCounterpartyByID(ctx context.Context, id int64) (*domain.Counterparty, error) {
	cp, err := s.repo.FindCounterpartyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find participant", slog.Int64("counterparty_id", id))
		}
		return nil, err
	}
	return cp, nil
}

// ListCounterparties retrieves all participants.
func (s *CounterpartyService) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	cps, err := s.repo.ListCounterparties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list participants")
		return nil, err
	}
	if cps == nil {
		cps = []domain.Counterparty{}
	}
	return cps, nil
}

// UpdateCounterparty applies the provided fields to an existing participant.
func (s *CounterpartyService) UpdateCounterparty(ctx context.Context, id int64, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error) {
	cp, err := s.repo.FindCounterpartyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TaxID != nil {
		taxID, err := normalizeTaxID(*req.TaxID)
		if err != nil {
			return nil, err
		}
		cp.TaxID = taxID
	}
	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.Type != nil {
		if !domain.CounterpartyType(*req.Type).Valid() {
			return nil, fmt.Errorf("%w: unknown participant type %d", apperrors.ErrValidation, *req.Type)
		}
		cp.Type = domain.CounterpartyType(*req.Type)
	}

	if err := s.repo.UpdateCounterparty(ctx, *cp); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update participant", slog.Int64("counterparty_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Participant updated", slog.Int64("counterparty_id", id))
	return cp, nil
}

// DeleteCounterparty removes a participant unless ledger entries still
// reference it.
func (s *CounterpartyService) DeleteCounterparty(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCounterparty(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete participant", slog.Int64("counterparty_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Participant deleted", slog.Int64("counterparty_id", id))
	return nil
}
