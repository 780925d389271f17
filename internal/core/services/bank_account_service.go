package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

type BankAccountService struct {
	BaseService
	repo portsrepo.BankAccountRepository
}

// NewBankAccountService creates the bank account service.
func NewBankAccountService(repo portsrepo.BankAccountRepository) *BankAccountService {
	return &BankAccountService{repo: repo}
}

var _ portssvc.BankAccountSvcFacade = (*BankAccountService)(nil)

// CreateBankAccount validates and persists a new account. The opening
// balance may be negative; it is informational and plays no part in the
// running-balance chain.
func (s *BankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	openedAt, err := parseOptionalDate("openedAt", req.OpenedAt)
	if err != nil {
		return nil, err
	}

	country := req.Country
	if country == "" {
		country = "BR"
	}

	account := domain.BankAccount{
		Code:           req.Code,
		Country:        country,
		BankCode:       req.BankCode,
		BankName:       req.BankName,
		Branch:         req.Branch,
		AccountNumber:  req.AccountNumber,
		OpeningBalance: req.OpeningBalance,
		OpenedAt:       today(),
	}
	if openedAt != nil {
		account.OpenedAt = *openedAt
	}

	saved, err := s.repo.SaveBankAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save bank account", slog.String("code", req.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.Int64("account_id", saved.ID), slog.String("code", saved.Code))
	return saved, nil
}

// GetBankAccountByID retrieves an account by its ID.
func (s *BankAccountService) GetBankAccountByID(ctx context.Context, id int64) (*domain.BankAccount, error) {
	account, err := s.repo.FindBankAccountByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account", slog.Int64("account_id", id))
		}
		return nil, err
	}
	return account, nil
}

// ListBankAccounts retrieves all accounts.
func (s *BankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := s.repo.ListBankAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.BankAccount{}
	}
	return accounts, nil
}

// UpdateBankAccount applies the provided fields to an existing account.
func (s *BankAccountService) UpdateBankAccount(ctx context.Context, id int64, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	account, err := s.repo.FindBankAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.BankCode != nil {
		account.BankCode = *req.BankCode
	}
	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.Branch != nil {
		account.Branch = *req.Branch
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.OpeningBalance != nil {
		account.OpeningBalance = *req.OpeningBalance
	}

	if err := s.repo.UpdateBankAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update bank account", slog.Int64("account_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Bank account updated", slog.Int64("account_id", id))
	return account, nil
}

// DeleteBankAccount removes an account unless ledger entries still
// reference it.
func (s *BankAccountService) DeleteBankAccount(ctx context.Context, id int64) error {
	if err := s.repo.DeleteBankAccount(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete bank account", slog.Int64("account_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Bank account deleted", slog.Int64("account_id", id))
	return nil
}
