package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

type CropService struct {
	BaseService
	repo portsrepo.CropRepository
}

// NewCropService creates the crop lookup service.
func NewCropService(repo portsrepo.CropRepository) *CropService {
	return &CropService{repo: repo}
}

var _ portssvc.CropSvcFacade = (*CropService)(nil)

// CreateCrop persists a new crop lookup row.
func (s *CropService) CreateCrop(ctx context.Context, req dto.CreateCropRequest) (*domain.Crop, error) {
	crop := domain.Crop{
		Name:        req.Name,
		Type:        req.Type,
		Cycle:       req.Cycle,
		MeasureUnit: req.MeasureUnit,
	}

	saved, err := s.repo.SaveCrop(ctx, crop)
	if err != nil {
		s.LogError(ctx, err, "Failed to save crop", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Crop created", slog.Int64("crop_id", saved.ID))
	return saved, nil
}

// GetCropByID retrieves a crop by its ID.
func (s *CropService) GetCropByID(ctx context.Context, id int64) (*domain.Crop, error) {
	crop, err := s.repo.FindCropByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find crop", slog.Int64("crop_id", id))
		}
		return nil, err
	}
	return crop, nil
}

// ListCrops retrieves all crops.
func (s *CropService) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	crops, err := s.repo.ListCrops(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list crops")
		return nil, err
	}
	if crops == nil {
		crops = []domain.Crop{}
	}
	return crops, nil
}

// UpdateCrop applies the provided fields to an existing crop.
func (s *CropService) UpdateCrop(ctx context.Context, id int64, req dto.UpdateCropRequest) (*domain.Crop, error) {
	crop, err := s.repo.FindCropByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		crop.Name = *req.Name
	}
	if req.Type != nil {
		crop.Type = *req.Type
	}
	if req.Cycle != nil {
		crop.Cycle = *req.Cycle
	}
	if req.MeasureUnit != nil {
		crop.MeasureUnit = *req.MeasureUnit
	}

	if err := s.repo.UpdateCrop(ctx, *crop); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update crop", slog.Int64("crop_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Crop updated", slog.Int64("crop_id", id))
	return crop, nil
}

// DeleteCrop removes a crop unless production areas still reference it.
func (s *CropService) DeleteCrop(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCrop(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete crop", slog.Int64("crop_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Crop deleted", slog.Int64("crop_id", id))
	return nil
}
