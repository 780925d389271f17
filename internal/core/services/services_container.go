package services

import (
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Property:       NewPropertyService(repos.PropertyRepo),
		BankAccount:    NewBankAccountService(repos.BankAccountRepo),
		Counterparty:   NewCounterpartyService(repos.CounterpartyRepo),
		Crop:           NewCropService(repos.CropRepo),
		ProductionArea: NewProductionAreaService(repos.ProductionAreaRepo),
		Inventory:      NewInventoryService(repos.InventoryRepo),
		Ledger:         NewLedgerService(repos.LedgerRepo),
		Reporting:      NewReportingService(repos.ReportingRepo),
		Export: NewExportService(
			repos.PropertyRepo,
			repos.BankAccountRepo,
			repos.CounterpartyRepo,
			repos.LedgerRepo,
		),
	}
}
