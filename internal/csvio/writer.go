package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"payment-engine/internal/ledger"
)

// Writer encodes final balances as CSV.
type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteBalances emits the header row followed by one row per balance, in the
// order given.
func (w *Writer) WriteBalances(balances []*ledger.Balance) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, b := range balances {
		row := []string{
			strconv.FormatUint(uint64(b.Client), 10),
			b.Available.String(),
			b.Held.String(),
			b.Total.String(),
			strconv.FormatBool(b.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}
