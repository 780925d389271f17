package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/core/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	var saved *domain.LedgerEntry
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.LedgerEntry)
	}
	return saved, args.Error(1)
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.LedgerEntryRow, error) {
	args := m.Called(ctx, filter)
	var rows []domain.LedgerEntryRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.LedgerEntryRow)
	}
	return rows, args.Error(1)
}

func (m *MockLedgerRepository) ListAllEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- CreateEntry Tests ---

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Date:         "2025-03-10",
		PropertyID:   1,
		AccountID:    2,
		DocumentType: int(domain.DocumentInvoice),
		Description:  "Venda de soja",
		EntryType:    int(domain.EntryIncome),
		AmountIn:     dec("1000"),
		AmountOut:    decimal.Zero,
		Category:     "Vendas",
	}

	saved := &domain.LedgerEntry{
		ID:           7,
		AccountID:    2,
		FinalBalance: dec("1000"),
		Nature:       domain.NaturePositive,
	}
	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		// The balance pair must not come from the client; the repository
		// derives it inside the insert transaction.
		return e.AccountID == 2 &&
			e.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			e.FinalBalance.IsZero() &&
			e.AmountIn.Equal(dec("1000"))
	})).Return(saved, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), entry.ID)
	suite.True(entry.FinalBalance.Equal(dec("1000")))
	suite.Equal(domain.NaturePositive, entry.Nature)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_BadDate() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Date:         "10/03/2025",
		PropertyID:   1,
		AccountID:    2,
		DocumentType: 1,
		Description:  "x",
		EntryType:    1,
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_UnknownEntryType() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Date:         "2025-03-10",
		PropertyID:   1,
		AccountID:    2,
		DocumentType: 1,
		Description:  "x",
		EntryType:    9,
	}

	_, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Date:         "2025-03-10",
		PropertyID:   1,
		AccountID:    2,
		DocumentType: 1,
		Description:  "x",
		EntryType:    2,
		AmountOut:    dec("-50"),
	}

	_, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_CarriesProductionArea() {
	ctx := context.Background()
	areaID := int64(4)
	req := dto.CreateLedgerEntryRequest{
		Date:             "2025-03-10",
		PropertyID:       1,
		AccountID:        2,
		DocumentType:     int(domain.DocumentInvoice),
		Description:      "Colheita talhão norte",
		EntryType:        int(domain.EntryIncome),
		AmountIn:         dec("500"),
		AmountOut:        decimal.Zero,
		ProductionAreaID: &areaID,
	}

	saved := &domain.LedgerEntry{ID: 8, AccountID: 2, ProductionAreaID: &areaID}
	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.ProductionAreaID != nil && *e.ProductionAreaID == 4
	})).Return(saved, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry.ProductionAreaID)
	suite.Equal(int64(4), *entry.ProductionAreaID)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateEntry Tests ---

func (suite *LedgerServiceTestSuite) TestUpdateEntry_RecomputesOwnBalance() {
	ctx := context.Background()
	existing := &domain.LedgerEntry{
		ID:           5,
		Date:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		PropertyID:   1,
		AccountID:    2,
		DocumentType: domain.DocumentReceipt,
		Description:  "Compra de insumos",
		EntryType:    domain.EntryExpense,
		AmountIn:     decimal.Zero,
		AmountOut:    dec("300"),
		FinalBalance: dec("300"),
		Nature:       domain.NatureNegative,
	}
	suite.mockRepo.On("FindEntryByID", ctx, int64(5)).Return(existing, nil).Once()

	newOut := dec("900")
	// Edits derive the stored pair from this entry's own amounts only:
	// |0 - 900| = 900, negative.
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.ID == 5 &&
			e.AmountOut.Equal(dec("900")) &&
			e.FinalBalance.Equal(dec("900")) &&
			e.Nature == domain.NatureNegative
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, 5, dto.UpdateLedgerEntryRequest{AmountOut: &newOut})

	suite.Require().NoError(err)
	suite.True(updated.FinalBalance.Equal(dec("900")))
	suite.Equal(domain.NatureNegative, updated.Nature)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_PositiveOwnBalance() {
	ctx := context.Background()
	existing := &domain.LedgerEntry{
		ID:           6,
		AmountIn:     dec("500"),
		AmountOut:    dec("200"),
		DocumentType: domain.DocumentOther,
		EntryType:    domain.EntryIncome,
	}
	suite.mockRepo.On("FindEntryByID", ctx, int64(6)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.FinalBalance.Equal(dec("300")) && e.Nature == domain.NaturePositive
	})).Return(nil).Once()

	desc := "ajuste"
	updated, err := suite.service.UpdateEntry(ctx, 6, dto.UpdateLedgerEntryRequest{Description: &desc})

	suite.Require().NoError(err)
	suite.Equal("ajuste", updated.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_PatchesProductionArea() {
	ctx := context.Background()
	existing := &domain.LedgerEntry{
		ID:           7,
		AmountIn:     dec("100"),
		DocumentType: domain.DocumentReceipt,
		EntryType:    domain.EntryIncome,
	}
	suite.mockRepo.On("FindEntryByID", ctx, int64(7)).Return(existing, nil).Once()

	areaID := int64(9)
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.ID == 7 && e.ProductionAreaID != nil && *e.ProductionAreaID == 9
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, 7, dto.UpdateLedgerEntryRequest{ProductionAreaID: &areaID})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.ProductionAreaID)
	suite.Equal(int64(9), *updated.ProductionAreaID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindEntryByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEntry(ctx, 99, dto.UpdateLedgerEntryRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry")
}

// --- ListEntries Tests ---

func (suite *LedgerServiceTestSuite) TestListEntries_ParsesWindow() {
	ctx := context.Background()
	accountID := int64(2)

	suite.mockRepo.On("ListEntries", ctx, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)) &&
			f.AccountID != nil && *f.AccountID == 2
	})).Return([]domain.LedgerEntryRow{}, nil).Once()

	rows, err := suite.service.ListEntries(ctx, dto.ListLedgerEntriesParams{
		From:      "2025-01-01",
		To:        "2025-12-31",
		AccountID: &accountID,
	})

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntries_InvertedWindow() {
	ctx := context.Background()

	_, err := suite.service.ListEntries(ctx, dto.ListLedgerEntriesParams{
		From: "2025-12-31",
		To:   "2025-01-01",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

// --- DeleteEntry Tests ---

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteEntry", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, 3)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteEntry", ctx, int64(3)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
