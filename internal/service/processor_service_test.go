package service

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() *ProcessorService {
	return NewProcessorService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProcessEndToEnd(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"deposit,2,2,2.0\n" +
		"withdrawal,1,3,1.5\n"

	l, err := newTestProcessor().Process(strings.NewReader(input))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, newTestProcessor().WriteBalances(&out, l))
	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,1.0000,0.0000,1.0000,false\n"+
			"2,2.0000,0.0000,2.0000,false\n",
		out.String())
}

func TestProcessSkipsBadRecords(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"gibberish,1,2,1.0\n" +
		"deposit,1,3,2.0\n"

	l, err := newTestProcessor().Process(strings.NewReader(input))
	require.NoError(t, err)

	b := l.Balance(1)
	require.NotNil(t, b)
	assert.Equal(t, "3.0000", b.Available.String())
}

func TestProcessEmptyInput(t *testing.T) {
	l, err := newTestProcessor().Process(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, l.Balances())
}

func TestProcessFileMissing(t *testing.T) {
	_, err := newTestProcessor().ProcessFile("does-not-exist.csv")
	assert.Error(t, err)
}
