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
)

type ProductionAreaService struct {
	BaseService
	repo portsrepo.ProductionAreaRepository
}

// NewProductionAreaService creates the production planning service.
func NewProductionAreaService(repo portsrepo.ProductionAreaRepository) *ProductionAreaService {
	return &ProductionAreaService{repo: repo}
}

var _ portssvc.ProductionAreaSvcFacade = (*ProductionAreaService)(nil)

// CreateProductionArea validates and persists a new planting row.
func (s *ProductionAreaService) CreateProductionArea(ctx context.Context, req dto.CreateProductionAreaRequest) (*domain.ProductionArea, error) {
	if req.Area.IsNegative() || req.EstimatedYield.IsNegative() {
		return nil, fmt.Errorf("%w: area and estimated yield must not be negative", apperrors.ErrValidation)
	}
	plantedAt, err := parseOptionalDate("plantedAt", req.PlantedAt)
	if err != nil {
		return nil, err
	}
	harvestAt, err := parseOptionalDate("estimatedHarvestAt", req.EstimatedHarvestAt)
	if err != nil {
		return nil, err
	}

	area := domain.ProductionArea{
		PropertyID:         req.PropertyID,
		CropID:             req.CropID,
		Area:               req.Area,
		PlantedAt:          plantedAt,
		EstimatedHarvestAt: harvestAt,
		EstimatedYield:     req.EstimatedYield,
	}

	saved, err := s.repo.SaveProductionArea(ctx, area)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save production area", slog.Int64("property_id", req.PropertyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Production area created", slog.Int64("production_area_id", saved.ID))
	return saved, nil
}

// GetProductionAreaByID retrieves a planting row by its ID.
func (s *ProductionAreaService) GetProductionAreaByID(ctx context.Context, id int64) (*domain.ProductionArea, error) {
	area, err := s.repo.FindProductionAreaByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find production area", slog.Int64("production_area_id", id))
		}
		return nil, err
	}
	return area, nil
}

// ListProductionAreas retrieves all planting rows.
func (s *ProductionAreaService) ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	areas, err := s.repo.ListProductionAreas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list production areas")
		return nil, err
	}
	if areas == nil {
		areas = []domain.ProductionArea{}
	}
	return areas, nil
}

// ListPlanning retrieves planting rows joined with crop names.
func (s *ProductionAreaService) ListPlanning(ctx context.Context) ([]domain.PlanningRow, error) {
	rows, err := s.repo.ListPlanning(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list planning rows")
		return nil, err
	}
	if rows == nil {
		rows = []domain.PlanningRow{}
	}
	return rows, nil
}

// UpdateProductionArea applies the provided fields to an existing row.
func (s *ProductionAreaService) UpdateProductionArea(ctx context.Context, id int64, req dto.UpdateProductionAreaRequest) (*domain.ProductionArea, error) {
	area, err := s.repo.FindProductionAreaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CropID != nil {
		area.CropID = *req.CropID
	}
	if req.Area != nil {
		if req.Area.IsNegative() {
			return nil, fmt.Errorf("%w: area must not be negative", apperrors.ErrValidation)
		}
		area.Area = *req.Area
	}
	if req.PlantedAt != nil {
		plantedAt, err := parseOptionalDate("plantedAt", req.PlantedAt)
		if err != nil {
			return nil, err
		}
		area.PlantedAt = plantedAt
	}
	if req.EstimatedHarvestAt != nil {
		harvestAt, err := parseOptionalDate("estimatedHarvestAt", req.EstimatedHarvestAt)
		if err != nil {
			return nil, err
		}
		area.EstimatedHarvestAt = harvestAt
	}
	if req.EstimatedYield != nil {
		if req.EstimatedYield.IsNegative() {
			return nil, fmt.Errorf("%w: estimated yield must not be negative", apperrors.ErrValidation)
		}
		area.EstimatedYield = *req.EstimatedYield
	}

	if err := s.repo.UpdateProductionArea(ctx, *area); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update production area", slog.Int64("production_area_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Production area updated", slog.Int64("production_area_id", id))
	return area, nil
}

// DeleteProductionArea removes a planting row.
func (s *ProductionAreaService) DeleteProductionArea(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProductionArea(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete production area", slog.Int64("production_area_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Production area deleted", slog.Int64("production_area_id", id))
	return nil
}
