package domain

import (
	"fmt"
	"strings"

	"payment-engine/internal/currency"
)

// Kind identifies the type of a transaction record.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps input text to a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	case "dispute":
		return Dispute, nil
	case "resolve":
		return Resolve, nil
	case "chargeback":
		return Chargeback, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind %q: must be one of (deposit, withdrawal, dispute, resolve, chargeback)", s)
	}
}

// Transaction is one immutable input record. Amount is present only for
// deposits and withdrawals; the dispute family carries just Client and TxID,
// referencing a previously seen transaction.
type Transaction struct {
	Kind   Kind
	Client uint16
	TxID   uint32
	Amount *currency.Value
}

// DisputeState tracks what has happened to a disputed transaction ID.
// A transaction with no recorded state has never been disputed.
type DisputeState int

const (
	// DisputeWaiting means the dispute is open, awaiting resolve or chargeback.
	DisputeWaiting DisputeState = iota
	// DisputeResolved means the dispute concluded, by either path; no further
	// dispute-family action is possible on the transaction.
	DisputeResolved
)
