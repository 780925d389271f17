package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

var hundred = decimal.NewFromInt(100)

type PropertyService struct {
	BaseService
	repo portsrepo.PropertyRepository
}

// NewPropertyService creates the property service.
func NewPropertyService(repo portsrepo.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

var _ portssvc.PropertySvcFacade = (*PropertyService)(nil)

func validatePropertyNumbers(participation, totalArea, cultivatedArea decimal.Decimal) error {
	if participation.IsNegative() || participation.GreaterThan(hundred) {
		return fmt.Errorf("%w: participation must be between 0 and 100", apperrors.ErrValidation)
	}
	if totalArea.IsNegative() || cultivatedArea.IsNegative() {
		return fmt.Errorf("%w: areas must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// CreateProperty validates and persists a new property.
func (s *PropertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	logger := s.GetLogger(ctx)

	if !domain.ExploitationType(req.Exploitation).Valid() {
		return nil, fmt.Errorf("%w: unknown exploitation code %d", apperrors.ErrValidation, req.Exploitation)
	}

	// Full ownership unless stated otherwise.
	participation := hundred
	if req.Participation != nil {
		participation = *req.Participation
	}
	if err := validatePropertyNumbers(participation, req.TotalArea, req.CultivatedArea); err != nil {
		return nil, err
	}

	country := req.Country
	if country == "" {
		country = "BR"
	}
	currency := req.Currency
	if currency == "" {
		currency = "BRL"
	}

	property := domain.Property{
		Code:              req.Code,
		Country:           country,
		Currency:          currency,
		CadITR:            req.CadITR,
		CAEPF:             req.CAEPF,
		StateRegistration: req.StateRegistration,
		Name:              req.Name,
		Street:            req.Street,
		Number:            req.Number,
		Complement:        req.Complement,
		District:          req.District,
		State:             req.State,
		MunicipalityCode:  req.MunicipalityCode,
		PostalCode:        req.PostalCode,
		Exploitation:      domain.ExploitationType(req.Exploitation),
		Participation:     participation,
		TotalArea:         req.TotalArea,
		CultivatedArea:    req.CultivatedArea,
		RegisteredAt:      today(),
	}

	saved, err := s.repo.SaveProperty(ctx, property)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save property", slog.String("error", err.Error()), slog.String("code", req.Code))
		}
		return nil, err
	}

	logger.Info("Property created", slog.Int64("property_id", saved.ID), slog.String("code", saved.Code))
	return saved, nil
}

// GetPropertyByID retrieves a property by its ID.
func (s *PropertyService) GetPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.repo.FindPropertyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find property", slog.Int64("property_id", id))
		}
		return nil, err
	}
	return property, nil
}

// ListProperties retrieves properties, optionally filtered by code or name.
func (s *PropertyService) ListProperties(ctx context.Context, search string) ([]domain.Property, error) {
	properties, err := s.repo.ListProperties(ctx, search)
	if err != nil {
		s.LogError(ctx, err, "Failed to list properties")
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	return properties, nil
}

// UpdateProperty applies the provided fields to an existing property.
func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.repo.FindPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		property.Code = *req.Code
	}
	if req.CadITR != nil {
		property.CadITR = *req.CadITR
	}
	if req.CAEPF != nil {
		property.CAEPF = *req.CAEPF
	}
	if req.StateRegistration != nil {
		property.StateRegistration = *req.StateRegistration
	}
	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Street != nil {
		property.Street = *req.Street
	}
	if req.Number != nil {
		property.Number = *req.Number
	}
	if req.Complement != nil {
		property.Complement = *req.Complement
	}
	if req.District != nil {
		property.District = *req.District
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.MunicipalityCode != nil {
		property.MunicipalityCode = *req.MunicipalityCode
	}
	if req.PostalCode != nil {
		property.PostalCode = *req.PostalCode
	}
	if req.Exploitation != nil {
		if !domain.ExploitationType(*req.Exploitation).Valid() {
			return nil, fmt.Errorf("%w: unknown exploitation code %d", apperrors.ErrValidation, *req.Exploitation)
		}
		property.Exploitation = domain.ExploitationType(*req.Exploitation)
	}
	if req.Participation != nil {
		property.Participation = *req.Participation
	}
	if req.TotalArea != nil {
		property.TotalArea = *req.TotalArea
	}
	if req.CultivatedArea != nil {
		property.CultivatedArea = *req.CultivatedArea
	}
	if err := validatePropertyNumbers(property.Participation, property.TotalArea, property.CultivatedArea); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProperty(ctx, *property); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update property", slog.Int64("property_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Property updated", slog.Int64("property_id", id))
	return property, nil
}

// DeleteProperty removes a property unless dependent records still
// reference it.
func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProperty(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete property", slog.Int64("property_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Property deleted", slog.Int64("property_id", id))
	return nil
}
