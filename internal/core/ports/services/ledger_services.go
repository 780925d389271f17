package services

import (
	"context"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// LedgerReaderSvc defines read operations for bookkeeping entries.
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a single entry by its unique identifier.
	GetEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error)

	// ListEntries retrieves entries matching the filters, newest entry date
	// first, with display names resolved.
	ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntryRow, error)
}

// LedgerWriterSvc defines write operations for bookkeeping entries.
type LedgerWriterSvc interface {
	// CreateEntry validates and appends an entry to its account's
	// running-balance chain. The stored saldo_final/natureza_saldo pair is
	// derived server-side; client-supplied balance fields are ignored.
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// UpdateEntry rewrites an entry. The balance pair is recomputed from the
	// entry's own amounts only; other entries are never touched.
	UpdateEntry(ctx context.Context, id int64, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// DeleteEntry removes an entry without repairing the chain of later
	// entries.
	DeleteEntry(ctx context.Context, id int64) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
