package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/core/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// --- Mock CounterpartyRepository ---
type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) SaveCounterparty(ctx context.Context, cp domain.Counterparty) (*domain.Counterparty, error) {
	args := m.Called(ctx, cp)
	var saved *domain.Counterparty
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Counterparty)
	}
	return saved, args.Error(1)
}

func (m *MockCounterpartyRepository) FindCounterpartyByID(ctx context.Context, id int64) (*domain.Counterparty, error) {
	args := m.Called(ctx, id)
	var cp *domain.Counterparty
	if args.Get(0) != nil {
		cp = args.Get(0).(*domain.Counterparty)
	}
	return cp, args.Error(1)
}

func (m *MockCounterpartyRepository) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	args := m.Called(ctx)
	var cps []domain.Counterparty
	if args.Get(0) != nil {
		cps = args.Get(0).([]domain.Counterparty)
	}
	return cps, args.Error(1)
}

func (m *MockCounterpartyRepository) UpdateCounterparty(ctx context.Context, cp domain.Counterparty) error {
	args := m.Called(ctx, cp)
	return args.Error(0)
}

func (m *MockCounterpartyRepository) DeleteCounterparty(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type CounterpartyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCounterpartyRepository
	service  portssvc.CounterpartySvcFacade
}

func (suite *CounterpartyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCounterpartyRepository)
	suite.service = services.NewCounterpartyService(suite.mockRepo)
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_NormalizesPunctuatedCPF() {
	ctx := context.Background()
	req := dto.CreateCounterpartyRequest{
		TaxID: "123.456.789-01",
		Name:  "João da Silva",
		Type:  int(domain.CounterpartyIndividual),
	}

	saved := &domain.Counterparty{ID: 1, TaxID: "12345678901", Name: req.Name, Type: domain.CounterpartyIndividual}
	suite.mockRepo.On("SaveCounterparty", ctx, mock.MatchedBy(func(cp domain.Counterparty) bool {
		// Stored raw: punctuation stripped, digits kept.
		return cp.TaxID == "12345678901" && cp.Type == domain.CounterpartyIndividual
	})).Return(saved, nil).Once()

	cp, err := suite.service.CreateCounterparty(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("12345678901", cp.TaxID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_AcceptsCNPJ() {
	ctx := context.Background()
	req := dto.CreateCounterpartyRequest{
		TaxID: "12.345.678/9012-34",
		Name:  "Cooperativa Agro Ltda",
		Type:  int(domain.CounterpartyLegalEntity),
	}

	saved := &domain.Counterparty{ID: 2, TaxID: "12345678901234"}
	suite.mockRepo.On("SaveCounterparty", ctx, mock.MatchedBy(func(cp domain.Counterparty) bool {
		return cp.TaxID == "12345678901234"
	})).Return(saved, nil).Once()

	_, err := suite.service.CreateCounterparty(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_RejectsTwelveDigits() {
	ctx := context.Background()
	req := dto.CreateCounterpartyRequest{
		TaxID: "123456789012",
		Name:  "Inválido",
		Type:  1,
	}

	cp, err := suite.service.CreateCounterparty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(cp)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCounterparty")
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_RejectsUnknownType() {
	ctx := context.Background()
	req := dto.CreateCounterpartyRequest{
		TaxID: "12345678901",
		Name:  "Fulano",
		Type:  5,
	}

	_, err := suite.service.CreateCounterparty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCounterparty")
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_DuplicateTaxID() {
	ctx := context.Background()
	req := dto.CreateCounterpartyRequest{
		TaxID: "12345678901",
		Name:  "Repetido",
		Type:  1,
	}
	suite.mockRepo.On("SaveCounterparty", ctx, mock.AnythingOfType("domain.Counterparty")).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCounterparty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CounterpartyServiceTestSuite) TestUpdateCounterparty_NormalizesTaxID() {
	ctx := context.Background()
	existing := &domain.Counterparty{ID: 3, TaxID: "12345678901", Name: "Antigo", Type: domain.CounterpartyIndividual}
	suite.mockRepo.On("FindCounterpartyByID", ctx, int64(3)).Return(existing, nil).Once()

	newTaxID := "987.654.321-00"
	suite.mockRepo.On("UpdateCounterparty", ctx, mock.MatchedBy(func(cp domain.Counterparty) bool {
		return cp.TaxID == "98765432100"
	})).Return(nil).Once()

	cp, err := suite.service.UpdateCounterparty(ctx, 3, dto.UpdateCounterpartyRequest{TaxID: &newTaxID})

	suite.Require().NoError(err)
	suite.Equal("98765432100", cp.TaxID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CounterpartyServiceTestSuite) TestDeleteCounterparty_Conflict() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCounterparty", ctx, int64(4)).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteCounterparty(ctx, 4)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestCounterpartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CounterpartyServiceTestSuite))
}
