package repositories

import (
	"context"
	"time"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
)

// EntryFilter narrows a ledger listing. From/To bound the entry date
// (inclusive); AccountID and PropertyID are optional.
type EntryFilter struct {
	From       time.Time
	To         time.Time
	AccountID  *int64
	PropertyID *int64
}

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves a single entry by its surrogate ID.
	FindEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error)

	// ListEntries retrieves entries in the filter window, newest entry date
	// first, with property/account/counterparty display names resolved.
	ListEntries(ctx context.Context, filter EntryFilter) ([]domain.LedgerEntryRow, error)

	// ListAllEntries retrieves every entry in insertion order. Used by the
	// export writers.
	ListAllEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveEntry appends an entry to its account's running-balance chain.
	// The repository locks the account row, reads the latest entry for the
	// account (by maximum ID, not date), derives saldo_final/natureza and
	// inserts — all inside one transaction, so concurrent inserts to the
	// same account serialize instead of reading the same predecessor.
	// The entry's FinalBalance and Nature fields are ignored on input.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpdateEntry rewrites an entry in place. FinalBalance and Nature must
	// already be derived by the caller (from the entry's own amounts; the
	// chain is not consulted on edit).
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntry removes an entry. Later entries in the same account's
	// chain are left untouched.
	DeleteEntry(ctx context.Context, id int64) error
}

// LedgerRepository combines ledger reads and writes.
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
