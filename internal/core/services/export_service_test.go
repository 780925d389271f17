package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/primeonhub/agrocontabil_app/internal/core/domain"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/core/services"
)

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	args := m.Called(ctx, account)
	var saved *domain.BankAccount
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.BankAccount)
	}
	return saved, args.Error(1)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, id int64) (*domain.BankAccount, error) {
	args := m.Called(ctx, id)
	var account *domain.BankAccount
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.BankAccount)
	}
	return account, args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	var accounts []domain.BankAccount
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.BankAccount)
	}
	return accounts, args.Error(1)
}

func (m *MockBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) DeleteBankAccount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockProperties     *MockPropertyRepository
	mockAccounts       *MockBankAccountRepository
	mockCounterparties *MockCounterpartyRepository
	mockLedger         *MockLedgerRepository
	service            portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockProperties = new(MockPropertyRepository)
	suite.mockAccounts = new(MockBankAccountRepository)
	suite.mockCounterparties = new(MockCounterpartyRepository)
	suite.mockLedger = new(MockLedgerRepository)
	suite.service = services.NewExportService(
		suite.mockProperties,
		suite.mockAccounts,
		suite.mockCounterparties,
		suite.mockLedger,
	)
}

func (suite *ExportServiceTestSuite) fixtures() {
	ctx := mock.Anything
	counterpartyID := int64(1)

	suite.mockProperties.On("ListProperties", ctx, "").Return([]domain.Property{{
		ID:                1,
		Code:              "IMV001",
		Country:           "BR",
		Currency:          "BRL",
		StateRegistration: "ISENTO",
		Name:              "Fazenda Boa Vista",
		Street:            "Rodovia BR-163",
		Number:            "12",
		District:          "Zona Rural",
		State:             "MT",
		MunicipalityCode:  "5107040",
		PostalCode:        "78890000",
		Exploitation:      domain.ExploitationIndividual,
	}}, nil)

	suite.mockAccounts.On("ListBankAccounts", ctx).Return([]domain.BankAccount{{
		ID:            1,
		Code:          "001",
		Country:       "BR",
		BankCode:      "341",
		BankName:      "Itaú",
		Branch:        "1234",
		AccountNumber: "56789-0",
	}}, nil)

	suite.mockCounterparties.On("ListCounterparties", ctx).Return([]domain.Counterparty{{
		ID:    1,
		TaxID: "12345678901",
		Name:  "João da Silva",
		Type:  domain.CounterpartyIndividual,
	}}, nil)

	suite.mockLedger.On("ListAllEntries", ctx).Return([]domain.LedgerEntry{{
		ID:             1,
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PropertyID:     1,
		AccountID:      1,
		DocumentNumber: "NF-1",
		DocumentType:   domain.DocumentInvoice,
		Description:    "Venda de soja",
		CounterpartyID: &counterpartyID,
		EntryType:      domain.EntryIncome,
		AmountIn:       decimal.NewFromInt(1000),
		AmountOut:      decimal.Zero,
		FinalBalance:   decimal.NewFromInt(1000),
		Nature:         domain.NaturePositive,
		Category:       "Vendas",
	}}, nil)
}

func (suite *ExportServiceTestSuite) TestWriteLCDPR_FrozenLayout() {
	suite.fixtures()

	var buf bytes.Buffer
	err := suite.service.WriteLCDPR(context.Background(), &buf)

	suite.Require().NoError(err)
	expected := "|0000|LCDPR|001|0001|\n" +
		"|0040|IMV001|BR|BRL|||ISENTO|Fazenda Boa Vista|Rodovia BR-163|12||Zona Rural|MT|5107040|78890000|1.00|\n" +
		"|0050|001|BR|341|Itaú|1234|56789-0|\n" +
		"|0100|12345678901|João da Silva|1|\n" +
		"|Q100|2025-03-10|1|1|NF-1|1|Venda de soja|1|1|1000.00|0.00|1000.00|P|\n" +
		"|9999|1|\n"
	suite.Equal(expected, buf.String())
}

func (suite *ExportServiceTestSuite) TestWriteLCDPR_EmptyDatasetStillFramed() {
	ctx := mock.Anything
	suite.mockProperties.On("ListProperties", ctx, "").Return([]domain.Property{}, nil)
	suite.mockAccounts.On("ListBankAccounts", ctx).Return([]domain.BankAccount{}, nil)
	suite.mockCounterparties.On("ListCounterparties", ctx).Return([]domain.Counterparty{}, nil)
	suite.mockLedger.On("ListAllEntries", ctx).Return([]domain.LedgerEntry{}, nil)

	var buf bytes.Buffer
	err := suite.service.WriteLCDPR(context.Background(), &buf)

	suite.Require().NoError(err)
	suite.Equal("|0000|LCDPR|001|0001|\n|9999|1|\n", buf.String())
}

func (suite *ExportServiceTestSuite) TestWriteEntriesCSV() {
	suite.fixtures()

	var buf bytes.Buffer
	err := suite.service.WriteEntriesCSV(context.Background(), &buf)

	suite.Require().NoError(err)
	expected := "ID;Data;Imóvel;Conta;Documento;Tipo Doc;Histórico;Participante;Tipo;Entrada;Saída;Saldo;Natureza;Categoria\n" +
		"1;2025-03-10;1;1;NF-1;1;Venda de soja;1;1;1000.00;0.00;1000.00;P;Vendas\n"
	suite.Equal(expected, buf.String())
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
