package services

import (
	"context"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// PropertyReaderSvc defines read operations for rural properties.
type PropertyReaderSvc interface {
	// GetPropertyByID retrieves a specific property by its unique identifier.
	GetPropertyByID(ctx context.Context, id int64) (*domain.Property, error)

	// ListProperties retrieves properties ordered by name, optionally filtered
	// by a substring match on code or name.
	ListProperties(ctx context.Context, search string) ([]domain.Property, error)
}

// PropertyWriterSvc defines write operations for rural properties.
type PropertyWriterSvc interface {
	// CreateProperty persists a new property.
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)

	// UpdateProperty updates an existing property's details.
	UpdateProperty(ctx context.Context, id int64, req dto.UpdatePropertyRequest) (*domain.Property, error)

	// DeleteProperty removes a property. Fails with a conflict while ledger
	// entries, production areas or stock items still reference it.
	DeleteProperty(ctx context.Context, id int64) error
}

// PropertySvcFacade combines all property-related service interfaces.
type PropertySvcFacade interface {
	PropertyReaderSvc
	PropertyWriterSvc
}

// BankAccountReaderSvc defines read operations for bank accounts.
type BankAccountReaderSvc interface {
	GetBankAccountByID(ctx context.Context, id int64) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// BankAccountWriterSvc defines write operations for bank accounts.
type BankAccountWriterSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id int64, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error)

	// DeleteBankAccount removes an account. Fails with a conflict while
	// ledger entries still reference it.
	DeleteBankAccount(ctx context.Context, id int64) error
}

// BankAccountSvcFacade combines all bank-account-related service interfaces.
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}

// CounterpartyReaderSvc defines read operations for participants.
type CounterpartyReaderSvc interface {
	GetCounterpartyByID(ctx context.Context, id int64) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context) ([]domain.Counterparty, error)
}

// CounterpartyWriterSvc defines write operations for participants.
type CounterpartyWriterSvc interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error)
	UpdateCounterparty(ctx context.Context, id int64, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error)
	DeleteCounterparty(ctx context.Context, id int64) error
}

// CounterpartySvcFacade combines all participant-related service interfaces.
type CounterpartySvcFacade interface {
	CounterpartyReaderSvc
	CounterpartyWriterSvc
}

// CropSvcFacade defines operations for the crop lookup table.
type CropSvcFacade interface {
	GetCropByID(ctx context.Context, id int64) (*domain.Crop, error)
	ListCrops(ctx context.Context) ([]domain.Crop, error)
	CreateCrop(ctx context.Context, req dto.CreateCropRequest) (*domain.Crop, error)
	UpdateCrop(ctx context.Context, id int64, req dto.UpdateCropRequest) (*domain.Crop, error)
	DeleteCrop(ctx context.Context, id int64) error
}

// ProductionAreaSvcFacade defines operations for production planning rows.
type ProductionAreaSvcFacade interface {
	GetProductionAreaByID(ctx context.Context, id int64) (*domain.ProductionArea, error)
	ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error)

	// ListPlanning retrieves production areas joined with crop names for the
	// planning listing.
	ListPlanning(ctx context.Context) ([]domain.PlanningRow, error)

	CreateProductionArea(ctx context.Context, req dto.CreateProductionAreaRequest) (*domain.ProductionArea, error)
	UpdateProductionArea(ctx context.Context, id int64, req dto.UpdateProductionAreaRequest) (*domain.ProductionArea, error)
	DeleteProductionArea(ctx context.Context, id int64) error
}

// InventorySvcFacade defines operations for stock items.
type InventorySvcFacade interface {
	GetInventoryItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id int64, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id int64) error
}
