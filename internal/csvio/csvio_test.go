package csvio

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-engine/internal/currency"
	"payment-engine/internal/domain"
	"payment-engine/internal/ledger"
)

func readAll(t *testing.T, input string) ([]domain.Transaction, []error) {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var txs []domain.Transaction
	var errs []error
	for {
		tx, err := r.Next()
		if err == io.EOF {
			return txs, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		txs = append(txs, tx)
	}
}

func TestReaderBasicRecords(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"withdrawal,1,2,0.5\n" +
		"dispute,1,1,\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 3)

	assert.Equal(t, domain.Deposit, txs[0].Kind)
	assert.Equal(t, uint16(1), txs[0].Client)
	assert.Equal(t, uint32(1), txs[0].TxID)
	require.NotNil(t, txs[0].Amount)
	assert.Equal(t, currency.FromUnits(10000), *txs[0].Amount)

	assert.Equal(t, domain.Withdrawal, txs[1].Kind)
	require.NotNil(t, txs[1].Amount)
	assert.Equal(t, currency.FromUnits(5000), *txs[1].Amount)

	assert.Equal(t, domain.Dispute, txs[2].Kind)
	assert.Nil(t, txs[2].Amount)
}

func TestReaderTrimsWhitespace(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"  deposit , 1 , 1 , 2.5 \n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.Deposit, txs[0].Kind)
	assert.Equal(t, currency.FromUnits(25000), *txs[0].Amount)
}

func TestReaderCaseInsensitiveKinds(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"DEPOSIT,1,1,1.0\n" +
		"Withdrawal,1,2,0.5\n" +
		"dIsPuTe,1,1,\n" +
		"RESOLVE,1,1,\n" +
		"ChargeBack,1,1,\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 5)
	assert.Equal(t, domain.Deposit, txs[0].Kind)
	assert.Equal(t, domain.Withdrawal, txs[1].Kind)
	assert.Equal(t, domain.Dispute, txs[2].Kind)
	assert.Equal(t, domain.Resolve, txs[3].Kind)
	assert.Equal(t, domain.Chargeback, txs[4].Kind)
}

func TestReaderShortDisputeRows(t *testing.T) {
	// Dispute rows may omit the amount column entirely.
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"dispute,1,1\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 2)
	assert.Nil(t, txs[1].Amount)
}

func TestReaderRecordErrorsDoNotStopStream(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"teleport,1,1,1.0\n" +
		"deposit,x,2,1.0\n" +
		"deposit,1,3,banana\n" +
		"deposit,1,4,\n" +
		"deposit,1,5,3.0\n"

	txs, errs := readAll(t, input)
	assert.Len(t, errs, 4)
	require.Len(t, txs, 1)
	assert.Equal(t, uint32(5), txs[0].TxID)
}

func TestReaderMissingNumericFieldsDefaultToZero(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,,,1.0\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, uint16(0), txs[0].Client)
	assert.Equal(t, uint32(0), txs[0].TxID)
}

func TestReaderRejectsHeaderWithoutTypeColumn(t *testing.T) {
	r := NewReader(strings.NewReader("a,b,c\n1,2,3\n"))
	_, err := r.Next()
	assert.Error(t, err)
}

func TestWriterRendersBalances(t *testing.T) {
	l := ledger.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	amt := currency.FromUnits(15000)
	l.Ingest(domain.Transaction{Kind: domain.Deposit, Client: 2, TxID: 1, Amount: &amt})
	l.Ingest(domain.Transaction{Kind: domain.Deposit, Client: 1, TxID: 2, Amount: &amt})

	var out strings.Builder
	require.NoError(t, NewWriter(&out).WriteBalances(l.Balances()))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"2,1.5000,0.0000,1.5000,false\n"+
			"1,1.5000,0.0000,1.5000,false\n",
		out.String())
}
