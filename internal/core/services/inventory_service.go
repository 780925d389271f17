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

type InventoryService struct {
	BaseService
	repo portsrepo.InventoryRepository
}

// NewInventoryService creates the stock service.
func NewInventoryService(repo portsrepo.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

// CreateInventoryItem validates and persists a new stock item.
func (s *InventoryService) CreateInventoryItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	if req.Quantity.IsNegative() || req.UnitValue.IsNegative() {
		return nil, fmt.Errorf("%w: quantity and unit value must not be negative", apperrors.ErrValidation)
	}
	enteredAt, err := parseOptionalDate("enteredAt", req.EnteredAt)
	if err != nil {
		return nil, err
	}
	expiresAt, err := parseOptionalDate("expiresAt", req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	item := domain.InventoryItem{
		Product:         req.Product,
		Quantity:        req.Quantity,
		MeasureUnit:     req.MeasureUnit,
		UnitValue:       req.UnitValue,
		StorageLocation: req.StorageLocation,
		EnteredAt:       today(),
		ExpiresAt:       expiresAt,
		PropertyID:      req.PropertyID,
	}
	if enteredAt != nil {
		item.EnteredAt = *enteredAt
	}

	saved, err := s.repo.SaveInventoryItem(ctx, item)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save stock item", slog.String("product", req.Product))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Stock item created", slog.Int64("item_id", saved.ID))
	return saved, nil
}

// GetInventoryItemByID retrieves a stock item by its ID.
func (s *InventoryService) GetInventoryItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item, err := s.repo.FindInventoryItemByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find stock item", slog.Int64("item_id", id))
		}
		return nil, err
	}
	return item, nil
}

// ListInventoryItems retrieves all stock items.
func (s *InventoryService) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.ListInventoryItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock items")
		return nil, err
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

// UpdateInventoryItem applies the provided fields to an existing stock item.
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, id int64, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error) {
	item, err := s.repo.FindInventoryItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Product != nil {
		item.Product = *req.Product
	}
	if req.Quantity != nil {
		if req.Quantity.IsNegative() {
			return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
		}
		item.Quantity = *req.Quantity
	}
	if req.MeasureUnit != nil {
		item.MeasureUnit = *req.MeasureUnit
	}
	if req.UnitValue != nil {
		if req.UnitValue.IsNegative() {
			return nil, fmt.Errorf("%w: unit value must not be negative", apperrors.ErrValidation)
		}
		item.UnitValue = *req.UnitValue
	}
	if req.StorageLocation != nil {
		item.StorageLocation = *req.StorageLocation
	}
	if req.ExpiresAt != nil {
		expiresAt, err := parseOptionalDate("expiresAt", req.ExpiresAt)
		if err != nil {
			return nil, err
		}
		item.ExpiresAt = expiresAt
	}
	if req.PropertyID != nil {
		item.PropertyID = req.PropertyID
	}

	if err := s.repo.UpdateInventoryItem(ctx, *item); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update stock item", slog.Int64("item_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Stock item updated", slog.Int64("item_id", id))
	return item, nil
}

// DeleteInventoryItem removes a stock item.
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteInventoryItem(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete stock item", slog.Int64("item_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Stock item deleted", slog.Int64("item_id", id))
	return nil
}
