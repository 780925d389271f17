package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	propertyRepo := newPgxPropertyRepository(dbPool)
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	counterpartyRepo := newPgxCounterpartyRepository(dbPool)
	cropRepo := newPgxCropRepository(dbPool)
	productionAreaRepo := newPgxProductionAreaRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PropertyRepo:       propertyRepo,
		BankAccountRepo:    bankAccountRepo,
		CounterpartyRepo:   counterpartyRepo,
		CropRepo:           cropRepo,
		ProductionAreaRepo: productionAreaRepo,
		InventoryRepo:      inventoryRepo,
		LedgerRepo:         ledgerRepo,
		ReportingRepo:      reportingRepo,
	}
}
