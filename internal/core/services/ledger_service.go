package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
	"github.com/primeonhub/agrocontabil_app/internal/utils/accounting"
)

type LedgerService struct {
	BaseService
	repo portsrepo.LedgerRepository
}

// NewLedgerService creates the bookkeeping service.
func NewLedgerService(repo portsrepo.LedgerRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func validateAmounts(amountIn, amountOut decimal.Decimal) error {
	if amountIn.IsNegative() || amountOut.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// CreateEntry validates and appends an entry to its account's chain. The
// repository derives the stored balance pair inside the insert transaction.
func (s *LedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if !domain.EntryType(req.EntryType).Valid() {
		return nil, fmt.Errorf("%w: unknown entry type %d", apperrors.ErrValidation, req.EntryType)
	}
	if !domain.DocumentType(req.DocumentType).Valid() {
		return nil, fmt.Errorf("%w: unknown document type %d", apperrors.ErrValidation, req.DocumentType)
	}
	if err := validateAmounts(req.AmountIn, req.AmountOut); err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		Date:           date,
		PropertyID:     req.PropertyID,
		AccountID:      req.AccountID,
		DocumentNumber: req.DocumentNumber,
		DocumentType:   domain.DocumentType(req.DocumentType),
		Description:    req.Description,
		CounterpartyID: req.CounterpartyID,
		EntryType:      domain.EntryType(req.EntryType),
		AmountIn:       req.AmountIn,
		AmountOut:      req.AmountOut,
		Category:       req.Category,

		ProductionAreaID: req.ProductionAreaID,
	}

	saved, err := s.repo.SaveEntry(ctx, entry)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save ledger entry", slog.Int64("account_id", req.AccountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.Int64("entry_id", saved.ID),
		slog.Int64("account_id", saved.AccountID),
		slog.String("saldo_final", saved.FinalBalance.String()),
		slog.String("natureza", string(saved.Nature)),
	)
	return saved, nil
}

// GetEntryByID retrieves an entry by its ID.
func (s *LedgerService) GetEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	entry, err := s.repo.FindEntryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger entry", slog.Int64("entry_id", id))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves entries matching the filters, newest first.
func (s *LedgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntryRow, error) {
	filter := portsrepo.EntryFilter{
		AccountID:  params.AccountID,
		PropertyID: params.PropertyID,
	}
	var err error
	if params.From != "" {
		if filter.From, err = parseDate("from", params.From); err != nil {
			return nil, err
		}
	}
	if params.To != "" {
		if filter.To, err = parseDate("to", params.To); err != nil {
			return nil, err
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: to must not precede from", apperrors.ErrValidation)
	}

	rows, err := s.repo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, err
	}
	if rows == nil {
		rows = []domain.LedgerEntryRow{}
	}
	return rows, nil
}

// UpdateEntry rewrites an entry. The stored balance pair is recomputed from
// the entry's own amounts alone; the account chain is not re-walked and
// other entries keep their stored balances. That matches how the books have
// always behaved on edits, and correcting an old entry therefore shows up
// only in that entry's own row.
func (s *LedgerService) UpdateEntry(ctx context.Context, id int64, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.repo.FindEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		var date time.Time
		if date, err = parseDate("date", *req.Date); err != nil {
			return nil, err
		}
		entry.Date = date
	}
	if req.PropertyID != nil {
		entry.PropertyID = *req.PropertyID
	}
	if req.AccountID != nil {
		entry.AccountID = *req.AccountID
	}
	if req.DocumentNumber != nil {
		entry.DocumentNumber = *req.DocumentNumber
	}
	if req.DocumentType != nil {
		if !domain.DocumentType(*req.DocumentType).Valid() {
			return nil, fmt.Errorf("%w: unknown document type %d", apperrors.ErrValidation, *req.DocumentType)
		}
		entry.DocumentType = domain.DocumentType(*req.DocumentType)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.CounterpartyID != nil {
		entry.CounterpartyID = req.CounterpartyID
	}
	if req.EntryType != nil {
		if !domain.EntryType(*req.EntryType).Valid() {
			return nil, fmt.Errorf("%w: unknown entry type %d", apperrors.ErrValidation, *req.EntryType)
		}
		entry.EntryType = domain.EntryType(*req.EntryType)
	}
	if req.AmountIn != nil {
		entry.AmountIn = *req.AmountIn
	}
	if req.AmountOut != nil {
		entry.AmountOut = *req.AmountOut
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.ProductionAreaID != nil {
		entry.ProductionAreaID = req.ProductionAreaID
	}
	if err := validateAmounts(entry.AmountIn, entry.AmountOut); err != nil {
		return nil, err
	}

	entry.FinalBalance, entry.Nature = accounting.OwnBalance(entry.AmountIn, entry.AmountOut)

	if err := s.repo.UpdateEntry(ctx, *entry); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update ledger entry", slog.Int64("entry_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry updated", slog.Int64("entry_id", id))
	return entry, nil
}

// DeleteEntry removes an entry. Later entries keep their stored balances;
// the current account balance is always read from the latest surviving
// entry, so it self-corrects.
func (s *LedgerService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete ledger entry", slog.Int64("entry_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Ledger entry deleted", slog.Int64("entry_id", id))
	return nil
}
