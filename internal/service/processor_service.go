package service

import (
	"io"
	"log/slog"
	"os"

	"payment-engine/internal/csvio"
	apperrors "payment-engine/internal/errors"
	"payment-engine/internal/ledger"
)

// ProcessorService runs a full pass over a transaction stream and produces
// the final ledger. Structurally broken records are logged and skipped; only
// an unreadable source aborts the run.
type ProcessorService struct {
	logger *slog.Logger
}

func NewProcessorService(logger *slog.Logger) *ProcessorService {
	return &ProcessorService{
		logger: logger,
	}
}

// Process consumes every transaction from r, in order, and returns the
// resulting ledger.
func (s *ProcessorService) Process(r io.Reader) (*ledger.Ledger, error) {
	l := ledger.New(s.logger)
	reader := csvio.NewReader(r)

	var processed, skipped int
	for {
		tx, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Per-record resilience: report and continue with the rest of
			// the stream.
			skipped++
			s.logger.Warn("skipping unreadable record", "error", err)
			continue
		}
		l.Ingest(tx)
		processed++
	}

	s.logger.Info("processing complete",
		"processed", processed,
		"skipped", skipped,
		"accounts", len(l.Balances()))
	return l, nil
}

// ProcessFile opens path and processes its contents. A missing or unreadable
// file is fatal for the whole run.
func (s *ProcessorService) ProcessFile(path string) (*ledger.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewAppErrorf(apperrors.MissingInputFile, "cannot open transactions file %q", path).WithDetails(err.Error())
	}
	defer f.Close()

	return s.Process(f)
}

// WriteBalances serializes the final balances of l to w in first-observed
// account order.
func (s *ProcessorService) WriteBalances(w io.Writer, l *ledger.Ledger) error {
	if err := csvio.NewWriter(w).WriteBalances(l.Balances()); err != nil {
		return apperrors.NewAppError(apperrors.InternalError, "failed to write balances").WithDetails(err.Error())
	}
	return nil
}
