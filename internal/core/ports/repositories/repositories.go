package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Constructed once at startup and threaded through the service layer.
type RepositoryProvider struct {
	PropertyRepo       PropertyRepository
	BankAccountRepo    BankAccountRepository
	CounterpartyRepo   CounterpartyRepository
	CropRepo           CropRepository
	ProductionAreaRepo ProductionAreaRepository
	InventoryRepo      InventoryRepository
	LedgerRepo         LedgerRepository
	ReportingRepo      ReportingRepository
}
