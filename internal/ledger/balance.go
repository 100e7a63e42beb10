package ledger

import (
	"payment-engine/internal/currency"
	"payment-engine/internal/domain"
)

// Balance is the full ledger state for one client: the three monetary fields,
// the frozen flag, and the private lookup structures used to settle disputes.
// Total is kept equal to Available + Held by every transition.
type Balance struct {
	Client    uint16
	Available currency.Value
	Held      currency.Value
	Total     currency.Value
	Locked    bool

	// Every accepted deposit and withdrawal, kept for dispute replay. A
	// rejected first withdrawal is recorded too, so its ID stays reserved.
	transactions map[uint32]domain.Transaction
	// Dispute status per transaction ID. No entry means never disputed.
	disputes map[uint32]domain.DisputeState
}

// newBalance creates the account record for the first transaction ever seen
// for a client. Only a deposit opens a funded account; a withdrawal opens a
// zeroed account that still reserves the transaction ID. Any other kind
// returns nil and the client stays unknown.
func newBalance(tx domain.Transaction) *Balance {
	switch tx.Kind {
	case domain.Deposit:
		if tx.Amount == nil {
			return nil
		}
		return &Balance{
			Client:       tx.Client,
			Available:    *tx.Amount,
			Total:        *tx.Amount,
			transactions: map[uint32]domain.Transaction{tx.TxID: tx},
			disputes:     make(map[uint32]domain.DisputeState),
		}
	case domain.Withdrawal:
		if tx.Amount == nil {
			return nil
		}
		return &Balance{
			Client:       tx.Client,
			transactions: map[uint32]domain.Transaction{tx.TxID: tx},
			disputes:     make(map[uint32]domain.DisputeState),
		}
	default:
		return nil
	}
}

func (b *Balance) deposit(tx domain.Transaction) bool {
	if tx.Amount == nil {
		return false
	}
	if _, seen := b.transactions[tx.TxID]; seen {
		return false
	}
	b.transactions[tx.TxID] = tx
	b.Available = b.Available.Add(*tx.Amount)
	b.Total = b.Total.Add(*tx.Amount)
	return true
}

func (b *Balance) withdraw(tx domain.Transaction) bool {
	if tx.Amount == nil {
		return false
	}
	// Insufficient funds cancels the whole operation before any side effect,
	// including the transaction-history entry.
	if b.Available.Sub(*tx.Amount).IsNegative() {
		return false
	}
	if _, seen := b.transactions[tx.TxID]; seen {
		return false
	}
	b.transactions[tx.TxID] = tx
	b.Available = b.Available.Sub(*tx.Amount)
	b.Total = b.Total.Sub(*tx.Amount)
	return true
}

func (b *Balance) dispute(txID uint32) bool {
	orig, seen := b.transactions[txID]
	if !seen {
		return false
	}
	// A transaction is disputed at most once over its lifetime.
	if _, disputed := b.disputes[txID]; disputed {
		return false
	}
	b.disputes[txID] = domain.DisputeWaiting
	// Only a disputed deposit holds funds; a disputed withdrawal's funds are
	// already gone, it just occupies its dispute slot.
	if orig.Kind == domain.Deposit {
		b.Available = b.Available.Sub(*orig.Amount)
		b.Held = b.Held.Add(*orig.Amount)
	}
	return true
}

func (b *Balance) resolve(txID uint32) bool {
	orig, seen := b.transactions[txID]
	if !seen {
		return false
	}
	state, disputed := b.disputes[txID]
	if !disputed || state == domain.DisputeResolved {
		return false
	}
	if orig.Kind == domain.Deposit {
		b.Available = b.Available.Add(*orig.Amount)
		b.Held = b.Held.Sub(*orig.Amount)
	}
	b.disputes[txID] = domain.DisputeResolved
	return true
}

func (b *Balance) chargeback(txID uint32) bool {
	orig, seen := b.transactions[txID]
	if !seen {
		return false
	}
	state, disputed := b.disputes[txID]
	if !disputed || state == domain.DisputeResolved {
		return false
	}
	switch orig.Kind {
	case domain.Deposit:
		// The held funds leave the account for good.
		b.Held = b.Held.Sub(*orig.Amount)
		b.Total = b.Total.Sub(*orig.Amount)
	case domain.Withdrawal:
		// The withdrawal is reversed.
		b.Available = b.Available.Add(*orig.Amount)
		b.Total = b.Total.Add(*orig.Amount)
	}
	b.Locked = true
	// Terminal either way; the account is frozen from here on.
	b.disputes[txID] = domain.DisputeResolved
	return true
}
