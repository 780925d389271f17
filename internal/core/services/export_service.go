package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	portsrepo "github.com/primeonhub/agrocontabil_app/internal/core/ports/repositories"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
)

type ExportService struct {
	BaseService
	properties     portsrepo.PropertyRepository
	accounts       portsrepo.BankAccountRepository
	counterparties portsrepo.CounterpartyRepository
	ledger         portsrepo.LedgerReader
}

// NewExportService creates the export service.
func NewExportService(
	properties portsrepo.PropertyRepository,
	accounts portsrepo.BankAccountRepository,
	counterparties portsrepo.CounterpartyRepository,
	ledger portsrepo.LedgerReader,
) *ExportService {
	return &ExportService{
		properties:     properties,
		accounts:       accounts,
		counterparties: counterparties,
		ledger:         ledger,
	}
}

var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

// writeBlock writes one pipe-delimited LCDPR record: |CODE|f1|f2|...|\n.
func writeBlock(w io.Writer, code string, fields ...string) error {
	_, err := fmt.Fprintf(w, "|%s|%s|\n", code, strings.Join(fields, "|"))
	return err
}

// WriteLCDPR streams the LCDPR text file. The field order and formatting of
// every block are frozen: consumers of the file parse it positionally, so
// this writer must never be "improved". In particular block 0040 renders the
// exploitation code with two decimals and omits the participation share.
func (s *ExportService) WriteLCDPR(ctx context.Context, w io.Writer) error {
	if err := writeBlock(w, "0000", "LCDPR", "001", "0001"); err != nil {
		return fmt.Errorf("failed to write header block: %w", err)
	}

	properties, err := s.properties.ListProperties(ctx, "")
	if err != nil {
		return err
	}
	for _, p := range properties {
		err := writeBlock(w, "0040",
			p.Code, p.Country, p.Currency, p.CadITR, p.CAEPF, p.StateRegistration,
			p.Name, p.Street, p.Number, p.Complement, p.District, p.State,
			p.MunicipalityCode, p.PostalCode,
			fmt.Sprintf("%.2f", float64(p.Exploitation)),
		)
		if err != nil {
			return fmt.Errorf("failed to write property block: %w", err)
		}
	}

	accounts, err := s.accounts.ListBankAccounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		err := writeBlock(w, "0050",
			a.Code, a.Country, a.BankCode, a.BankName, a.Branch, a.AccountNumber,
		)
		if err != nil {
			return fmt.Errorf("failed to write account block: %w", err)
		}
	}

	counterparties, err := s.counterparties.ListCounterparties(ctx)
	if err != nil {
		return err
	}
	for _, cp := range counterparties {
		err := writeBlock(w, "0100", cp.TaxID, cp.Name, strconv.Itoa(int(cp.Type)))
		if err != nil {
			return fmt.Errorf("failed to write participant block: %w", err)
		}
	}

	entries, err := s.ledger.ListAllEntries(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		counterpartyID := ""
		if e.CounterpartyID != nil {
			counterpartyID = strconv.FormatInt(*e.CounterpartyID, 10)
		}
		err := writeBlock(w, "Q100",
			e.Date.Format(dto.DateLayout),
			strconv.FormatInt(e.PropertyID, 10),
			strconv.FormatInt(e.AccountID, 10),
			e.DocumentNumber,
			strconv.Itoa(int(e.DocumentType)),
			e.Description,
			counterpartyID,
			strconv.Itoa(int(e.EntryType)),
			e.AmountIn.StringFixed(2),
			e.AmountOut.StringFixed(2),
			e.FinalBalance.StringFixed(2),
			string(e.Nature),
		)
		if err != nil {
			return fmt.Errorf("failed to write entry block: %w", err)
		}
	}

	if err := writeBlock(w, "9999", "1"); err != nil {
		return fmt.Errorf("failed to write trailer block: %w", err)
	}
	return nil
}

// csvHeader is the ledger export header, kept in the original's column order.
var csvHeader = []string{
	"ID", "Data", "Imóvel", "Conta", "Documento", "Tipo Doc",
	"Histórico", "Participante", "Tipo", "Entrada", "Saída", "Saldo", "Natureza", "Categoria",
}

// WriteEntriesCSV streams the full ledger as a semicolon-delimited CSV.
func (s *ExportService) WriteEntriesCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.ledger.ListAllEntries(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		counterpartyID := ""
		if e.CounterpartyID != nil {
			counterpartyID = strconv.FormatInt(*e.CounterpartyID, 10)
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(dto.DateLayout),
			strconv.FormatInt(e.PropertyID, 10),
			strconv.FormatInt(e.AccountID, 10),
			e.DocumentNumber,
			strconv.Itoa(int(e.DocumentType)),
			e.Description,
			counterpartyID,
			strconv.Itoa(int(e.EntryType)),
			e.AmountIn.StringFixed(2),
			e.AmountOut.StringFixed(2),
			e.FinalBalance.StringFixed(2),
			string(e.Nature),
			e.Category,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
