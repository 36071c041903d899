package txledger

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// ErrAccountExists is returned when initializing an account twice.
var ErrAccountExists = errors.New("account already exists")

// Account is the state of a single client account.
//
// Between two transactions, Total is always Available + Held.
type Account struct {
	client    ClientID
	available Amount
	held      Amount
	total     Amount
	locked    bool
}

func (a *Account) Client() ClientID  { return a.client }
func (a *Account) Available() Amount { return a.available }
func (a *Account) Held() Amount      { return a.held }
func (a *Account) Total() Amount     { return a.total }
func (a *Account) Locked() bool      { return a.locked }

// Deposit credits x to the available funds.
func (a *Account) Deposit(x Amount) {
	a.available = a.available.Add(x)
	a.total = a.total.Add(x)
}

// Withdraw debits x from the available funds. It does nothing and returns
// false if there are not enough available funds.
func (a *Account) Withdraw(x Amount) bool {
	if a.available.LessThan(x) {
		return false
	}
	a.available = a.available.Sub(x)
	a.total = a.total.Sub(x)
	return true
}

// Dispute moves x from available to held funds.
//
// Available funds may become negative if they were withdrawn in the meantime.
func (a *Account) Dispute(x Amount) {
	a.available = a.available.Sub(x)
	a.held = a.held.Add(x)
}

// Resolve moves x back from held to available funds.
func (a *Account) Resolve(x Amount) {
	a.held = a.held.Sub(x)
	a.available = a.available.Add(x)
}

// Chargeback removes x from the held funds and locks the account.
func (a *Account) Chargeback(x Amount) {
	a.held = a.held.Sub(x)
	a.total = a.total.Sub(x)
	a.locked = true
}

// Ledger maps clients to their account.
type Ledger struct {
	accounts map[ClientID]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[ClientID]*Account)}
}

// Contains reports whether the client has an account.
func (l *Ledger) Contains(client ClientID) bool {
	_, ok := l.accounts[client]
	return ok
}

// Get returns the client account.
func (l *Ledger) Get(client ClientID) (*Account, bool) {
	a, ok := l.accounts[client]
	return a, ok
}

// Initialize opens an account for client with an initial deposit.
func (l *Ledger) Initialize(client ClientID, initialDeposit Amount) (*Account, error) {
	if l.Contains(client) {
		return nil, fmt.Errorf("client %d: %w", client, ErrAccountExists)
	}
	a := &Account{
		client:    client,
		available: initialDeposit,
		total:     initialDeposit,
	}
	l.accounts[client] = a
	return a, nil
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// Accounts iterates over all accounts, by ascending client id.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, client := range slices.Sorted(maps.Keys(l.accounts)) {
			if !yield(l.accounts[client]) {
				return
			}
		}
	}
}

// Serialize returns the ledger in the CSV report format.
func (l *Ledger) Serialize() string {
	var b strings.Builder
	// writing to a strings.Builder never fails.
	_ = EncodeReport(&b, l)
	return b.String()
}
