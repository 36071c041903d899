package renderer

import (
	"slices"

	"github.com/etnz/txledger"
)

// Accounts is the data of the accounts report.
type Accounts struct {
	Accounts    []*txledger.Account
	Count       int
	LockedCount int
}

// NewAccounts collects the ledger accounts, by ascending client id.
func NewAccounts(l *txledger.Ledger) *Accounts {
	r := &Accounts{Accounts: slices.Collect(l.Accounts())}
	r.Count = len(r.Accounts)
	for _, a := range r.Accounts {
		if a.Locked() {
			r.LockedCount++
		}
	}
	return r
}

// RenderAccounts renders the ledger accounts as a markdown table.
func RenderAccounts(l *txledger.Ledger) string {
	partials := map[string]string{
		"accounts_title": "accounts_title.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, NewAccounts(l))
}
