package services

import (
	"context"
	"io"
)

// ExportSvcFacade produces the downloadable exports of the full dataset.
type ExportSvcFacade interface {
	// WriteLCDPR streams the pipe-delimited LCDPR text file (blocks 0000,
	// 0040, 0050, 0100, Q100, 9999) to w.
	WriteLCDPR(ctx context.Context, w io.Writer) error

	// WriteEntriesCSV streams the ledger entries as a semicolon-delimited CSV
	// to w.
	WriteEntriesCSV(ctx context.Context, w io.Writer) error
}
