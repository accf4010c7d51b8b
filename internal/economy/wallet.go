package economy

import "github.com/samdwyer/tradeworld/internal/failure"

// Wallet holds the session's cash balance. Only the economy package debits
// it, and only after every precondition of an operation has passed.
type Wallet struct {
	balance float64
}

// NewWallet creates a wallet with the given balance.
func NewWallet(balance float64) *Wallet {
	return &Wallet{balance: balance}
}

// Balance returns the current cash.
func (w *Wallet) Balance() float64 {
	return w.balance
}

// CanAfford fails with InsufficientFunds when cost exceeds the balance.
func (w *Wallet) CanAfford(cost float64) error {
	if w.balance < cost {
		return failure.New(failure.InsufficientFunds,
			"Insufficient funds. Need $%.2f, have $%.2f.", cost, w.balance)
	}
	return nil
}

func (w *Wallet) debit(amount float64) {
	w.balance -= amount
}
