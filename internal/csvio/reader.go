// Package csvio implements the delimited-text edge of the engine: decoding
// transaction records from CSV and encoding final balances back out. The
// ledger core never sees CSV framing; it receives structurally parsed
// transactions from here.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"payment-engine/internal/currency"
	"payment-engine/internal/domain"
	apperrors "payment-engine/internal/errors"
)

// Reader decodes transactions from a CSV stream. Columns are mapped by
// header name (type, client, tx, amount); fields may carry surrounding
// whitespace, the amount column may be absent or empty for the dispute
// family, and missing numeric fields default to zero.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Rows may omit trailing columns (a dispute has no amount).
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Next returns the next transaction in the stream. Structural failures are
// returned per record so the caller can skip and continue; io.EOF marks the
// end of input.
func (r *Reader) Next() (domain.Transaction, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return domain.Transaction{}, err
		}
	}

	record, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return domain.Transaction{}, io.EOF
		}
		return domain.Transaction{}, apperrors.NewAppError(apperrors.InvalidRecord, "malformed CSV record").WithDetails(err.Error())
	}

	kindText := r.field(record, "type")
	kind, err := domain.ParseKind(kindText)
	if err != nil {
		return domain.Transaction{}, apperrors.NewAppError(apperrors.UnknownTransactionKind, err.Error())
	}

	client, err := parseUint(r.field(record, "client"), 16)
	if err != nil {
		return domain.Transaction{}, apperrors.NewAppErrorf(apperrors.InvalidRecord, "invalid client field: %v", err)
	}

	txID, err := parseUint(r.field(record, "tx"), 32)
	if err != nil {
		return domain.Transaction{}, apperrors.NewAppErrorf(apperrors.InvalidRecord, "invalid tx field: %v", err)
	}

	tx := domain.Transaction{
		Kind:   kind,
		Client: uint16(client),
		TxID:   uint32(txID),
	}

	if amountText := r.field(record, "amount"); amountText != "" {
		amount, err := currency.Parse(amountText)
		if err != nil {
			return domain.Transaction{}, apperrors.NewAppError(apperrors.InvalidAmount, err.Error())
		}
		tx.Amount = &amount
	} else if kind == domain.Deposit || kind == domain.Withdrawal {
		return domain.Transaction{}, apperrors.ErrMissingAmount
	}

	return tx, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return apperrors.NewAppError(apperrors.InvalidRecord, "unreadable CSV header").WithDetails(err.Error())
	}
	r.columns = make(map[string]int, len(header))
	for i, name := range header {
		r.columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := r.columns["type"]; !ok {
		return apperrors.NewAppError(apperrors.InvalidRecord, "CSV header missing type column")
	}
	return nil
}

// field returns the trimmed value of a named column, or "" when the column
// is absent from the header or from this particular row.
func (r *Reader) field(record []string, name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseUint treats an empty field as zero, mirroring the optional-field
// handling of the input format.
func parseUint(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%q is not a %d-bit unsigned integer", s, bits)
	}
	return v, nil
}
