package mapping

import (
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/models"
)

// ToModelBankAccount converts a domain.BankAccount to its DB representation.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		ID:             d.ID,
		Code:           d.Code,
		Country:        d.Country,
		BankCode:       d.BankCode,
		BankName:       d.BankName,
		Branch:         d.Branch,
		AccountNumber:  d.AccountNumber,
		OpeningBalance: d.OpeningBalance,
		OpenedAt:       d.OpenedAt,
	}
}

// ToDomainBankAccount converts a DB row back to the domain representation.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		ID:             m.ID,
		Code:           m.Code,
		Country:        m.Country,
		BankCode:       m.BankCode,
		BankName:       m.BankName,
		Branch:         m.Branch,
		AccountNumber:  m.AccountNumber,
		OpeningBalance: m.OpeningBalance,
		OpenedAt:       m.OpenedAt,
	}
}

// ToModelCounterparty converts a domain.Counterparty to its DB representation.
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		ID:           d.ID,
		TaxID:        d.TaxID,
		Name:         d.Name,
		Type:         int(d.Type),
		RegisteredAt: d.RegisteredAt,
	}
}

// ToDomainCounterparty converts a DB row back to the domain representation.
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		ID:           m.ID,
		TaxID:        m.TaxID,
		Name:         m.Name,
		Type:         domain.CounterpartyType(m.Type),
		RegisteredAt: m.RegisteredAt,
	}
}

// ToModelCrop converts a domain.Crop to its DB representation.
func ToModelCrop(d domain.Crop) models.Crop {
	return models.Crop{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Cycle:       d.Cycle,
		MeasureUnit: d.MeasureUnit,
	}
}

// ToDomainCrop converts a DB row back to the domain representation.
func ToDomainCrop(m models.Crop) domain.Crop {
	return domain.Crop{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Cycle:       m.Cycle,
		MeasureUnit: m.MeasureUnit,
	}
}

// ToModelProductionArea converts a domain.ProductionArea to its DB representation.
func ToModelProductionArea(d domain.ProductionArea) models.ProductionArea {
	return models.ProductionArea{
		ID:                 d.ID,
		PropertyID:         d.PropertyID,
		CropID:             d.CropID,
		Area:               d.Area,
		PlantedAt:          d.PlantedAt,
		EstimatedHarvestAt: d.EstimatedHarvestAt,
		EstimatedYield:     d.EstimatedYield,
	}
}

// ToDomainProductionArea converts a DB row back to the domain representation.
func ToDomainProductionArea(m models.ProductionArea) domain.ProductionArea {
	return domain.ProductionArea{
		ID:                 m.ID,
		PropertyID:         m.PropertyID,
		CropID:             m.CropID,
		Area:               m.Area,
		PlantedAt:          m.PlantedAt,
		EstimatedHarvestAt: m.EstimatedHarvestAt,
		EstimatedYield:     m.EstimatedYield,
	}
}

// ToModelInventoryItem converts a domain.InventoryItem to its DB representation.
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ID:              d.ID,
		Product:         d.Product,
		Quantity:        d.Quantity,
		MeasureUnit:     d.MeasureUnit,
		UnitValue:       d.UnitValue,
		StorageLocation: d.StorageLocation,
		EnteredAt:       d.EnteredAt,
		ExpiresAt:       d.ExpiresAt,
		PropertyID:      d.PropertyID,
	}
}

// ToDomainInventoryItem converts a DB row back to the domain representation.
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:              m.ID,
		Product:         m.Product,
		Quantity:        m.Quantity,
		MeasureUnit:     m.MeasureUnit,
		UnitValue:       m.UnitValue,
		StorageLocation: m.StorageLocation,
		EnteredAt:       m.EnteredAt,
		ExpiresAt:       m.ExpiresAt,
		PropertyID:      m.PropertyID,
	}
}
