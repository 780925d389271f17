package repositories

import (
	"context"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
)

// PropertyRepository defines persistence operations for rural properties.
type PropertyRepository interface {
	// SaveProperty inserts a new property and returns it with the generated ID.
	SaveProperty(ctx context.Context, property domain.Property) (*domain.Property, error)

	// FindPropertyByID retrieves a property by its surrogate ID.
	FindPropertyByID(ctx context.Context, id int64) (*domain.Property, error)

	// ListProperties retrieves properties ordered by name, optionally filtered
	// by a substring match on code or name.
	ListProperties(ctx context.Context, search string) ([]domain.Property, error)

	// UpdateProperty mutates an existing property in place.
	UpdateProperty(ctx context.Context, property domain.Property) error

	// DeleteProperty removes a property. Returns ErrConflict when ledger
	// entries, production areas or inventory items still reference it.
	DeleteProperty(ctx context.Context, id int64) error
}

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error)
	FindBankAccountByID(ctx context.Context, id int64) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all accounts ordered by bank name.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)

	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error

	// DeleteBankAccount removes an account. Returns ErrConflict when ledger
	// entries still reference it.
	DeleteBankAccount(ctx context.Context, id int64) error
}

// CounterpartyRepository defines persistence operations for participants.
type CounterpartyRepository interface {
	SaveCounterparty(ctx context.Context, cp domain.Counterparty) (*domain.Counterparty, error)
	FindCounterpartyByID(ctx context.Context, id int64) (*domain.Counterparty, error)

	// ListCounterparties retrieves all participants, most recently registered first.
	ListCounterparties(ctx context.Context) ([]domain.Counterparty, error)

	UpdateCounterparty(ctx context.Context, cp domain.Counterparty) error
	DeleteCounterparty(ctx context.Context, id int64) error
}

// CropRepository defines persistence operations for crop lookups.
type CropRepository interface {
	SaveCrop(ctx context.Context, crop domain.Crop) (*domain.Crop, error)
	FindCropByID(ctx context.Context, id int64) (*domain.Crop, error)
	ListCrops(ctx context.Context) ([]domain.Crop, error)
	UpdateCrop(ctx context.Context, crop domain.Crop) error
	DeleteCrop(ctx context.Context, id int64) error
}

// ProductionAreaRepository defines persistence operations for production areas.
type ProductionAreaRepository interface {
	SaveProductionArea(ctx context.Context, area domain.ProductionArea) (*domain.ProductionArea, error)
	FindProductionAreaByID(ctx context.Context, id int64) (*domain.ProductionArea, error)
	ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error)

	// ListPlanning retrieves production areas joined with their crop names,
	// as consumed by the planning listing.
	ListPlanning(ctx context.Context) ([]domain.PlanningRow, error)

	UpdateProductionArea(ctx context.Context, area domain.ProductionArea) error
	DeleteProductionArea(ctx context.Context, id int64) error
}

// InventoryRepository defines persistence operations for inventory items.
type InventoryRepository interface {
	SaveInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	FindInventoryItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item domain.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, id int64) error
}
