// Package ledger holds the per-client balance state machine. Transactions are
// applied strictly in input order; every invalid transition (duplicate ID,
// insufficient funds, dispute on an unknown or settled transaction, anything
// on a frozen account) is a silent no-op with no partial side effects.
package ledger

import (
	"log/slog"

	"payment-engine/internal/domain"
)

// Ledger owns one Balance per client, created lazily on the first transaction
// seen for that client.
type Ledger struct {
	logger   *slog.Logger
	balances map[uint16]*Balance
	// Clients in the order they were first observed.
	order []uint16
}

func New(logger *slog.Logger) *Ledger {
	return &Ledger{
		logger:   logger,
		balances: make(map[uint16]*Balance),
	}
}

// Ingest applies one transaction. It never fails: transactions that violate
// the transition rules are discarded without touching any state.
func (l *Ledger) Ingest(tx domain.Transaction) {
	b, known := l.balances[tx.Client]
	if !known {
		// Only a deposit or withdrawal may open an account; the dispute
		// family referencing an unknown client is discarded outright.
		if nb := newBalance(tx); nb != nil {
			l.balances[tx.Client] = nb
			l.order = append(l.order, tx.Client)
		} else {
			l.logger.Debug("discarded transaction for unknown client",
				"kind", tx.Kind.String(), "client", tx.Client, "tx", tx.TxID)
		}
		return
	}

	if b.Locked {
		l.logger.Debug("discarded transaction for frozen account",
			"kind", tx.Kind.String(), "client", tx.Client, "tx", tx.TxID)
		return
	}

	var applied bool
	switch tx.Kind {
	case domain.Deposit:
		applied = b.deposit(tx)
	case domain.Withdrawal:
		applied = b.withdraw(tx)
	case domain.Dispute:
		applied = b.dispute(tx.TxID)
	case domain.Resolve:
		applied = b.resolve(tx.TxID)
	case domain.Chargeback:
		applied = b.chargeback(tx.TxID)
	}
	if !applied {
		l.logger.Debug("discarded transaction",
			"kind", tx.Kind.String(), "client", tx.Client, "tx", tx.TxID)
	}
}

// Balance returns the record for one client, or nil if the client has never
// been observed.
func (l *Ledger) Balance(client uint16) *Balance {
	return l.balances[client]
}

// Balances returns a snapshot of every account in first-observed order.
func (l *Ledger) Balances() []*Balance {
	out := make([]*Balance, 0, len(l.order))
	for _, client := range l.order {
		out = append(out, l.balances[client])
	}
	return out
}
