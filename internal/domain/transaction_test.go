package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"deposit":    Deposit,
		"DEPOSIT":    Deposit,
		"Withdrawal": Withdrawal,
		"dIsPuTe":    Dispute,
		"resolve":    Resolve,
		"ChargeBack": Chargeback,
	}
	for text, want := range cases {
		got, err := ParseKind(text)
		require.NoError(t, err, "parsing %q", text)
		assert.Equal(t, want, got, "parsing %q", text)
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	for _, text := range []string{"", "transfer", "deposit ", "deposits"} {
		_, err := ParseKind(text)
		assert.Error(t, err, "parsing %q", text)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "deposit", Deposit.String())
	assert.Equal(t, "chargeback", Chargeback.String())
}
