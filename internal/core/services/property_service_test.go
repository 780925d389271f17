package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/core/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

// --- Mock PropertyRepository ---
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, property)
	var saved *domain.Property
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Property)
	}
	return saved, args.Error(1)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	var property *domain.Property
	if args.Get(0) != nil {
		property = args.Get(0).(*domain.Property)
	}
	return property, args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context, search string) ([]domain.Property, error) {
	args := m.Called(ctx, search)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *MockPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) DeleteProperty(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type PropertyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPropertyRepository
	service  portssvc.PropertySvcFacade
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPropertyRepository)
	suite.service = services.NewPropertyService(suite.mockRepo)
}

func validCreatePropertyRequest() dto.CreatePropertyRequest {
	return dto.CreatePropertyRequest{
		Code:             "IMV001",
		Name:             "Fazenda Boa Vista",
		Street:           "Rodovia BR-163, km 12",
		District:         "Zona Rural",
		State:            "MT",
		MunicipalityCode: "5107040",
		PostalCode:       "78890000",
		Exploitation:     int(domain.ExploitationIndividual),
		TotalArea:        decimal.NewFromInt(1200),
		CultivatedArea:   decimal.NewFromInt(800),
	}
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_Defaults() {
	ctx := context.Background()
	req := validCreatePropertyRequest()

	saved := &domain.Property{ID: 1, Code: req.Code}
	suite.mockRepo.On("SaveProperty", ctx, mock.MatchedBy(func(p domain.Property) bool {
		return p.Country == "BR" && p.Currency == "BRL" &&
			p.Participation.Equal(decimal.NewFromInt(100)) &&
			!p.RegisteredAt.IsZero()
	})).Return(saved, nil).Once()

	property, err := suite.service.CreateProperty(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), property.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_ParticipationOutOfRange() {
	ctx := context.Background()
	req := validCreatePropertyRequest()
	over := decimal.NewFromInt(150)
	req.Participation = &over

	property, err := suite.service.CreateProperty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(property)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProperty")
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_UnknownExploitation() {
	ctx := context.Background()
	req := validCreatePropertyRequest()
	req.Exploitation = 7

	_, err := suite.service.CreateProperty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProperty")
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_DuplicateCode() {
	ctx := context.Background()
	req := validCreatePropertyRequest()
	suite.mockRepo.On("SaveProperty", ctx, mock.AnythingOfType("domain.Property")).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateProperty(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_ValidatesMergedState() {
	ctx := context.Background()
	existing := &domain.Property{
		ID:            2,
		Code:          "IMV002",
		Participation: decimal.NewFromInt(100),
		TotalArea:     decimal.NewFromInt(500),
	}
	suite.mockRepo.On("FindPropertyByID", ctx, int64(2)).Return(existing, nil).Once()

	negative := decimal.NewFromInt(-10)
	_, err := suite.service.UpdateProperty(ctx, 2, dto.UpdatePropertyRequest{TotalArea: &negative})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProperty")
}

func (suite *PropertyServiceTestSuite) TestListProperties_PassesSearch() {
	ctx := context.Background()
	suite.mockRepo.On("ListProperties", ctx, "boa vista").Return([]domain.Property{{ID: 1}}, nil).Once()

	properties, err := suite.service.ListProperties(ctx, "boa vista")

	suite.Require().NoError(err)
	suite.Len(properties, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestDeleteProperty_Conflict() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteProperty", ctx, int64(1)).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteProperty(ctx, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
