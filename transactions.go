package txledger

import "fmt"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a transaction.
type TxID uint32

// Kind is a typed string for identifying transaction kinds.
type Kind string

// Transaction kinds, as they appear in the input "type" column.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind parses a transaction kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// movesFunds reports whether this kind carries its own amount, i.e. it is a
// deposit or a withdrawal. Only those are retained for later disputes.
func (k Kind) movesFunds() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is a single input record.
//
// Dispute, Resolve and Chargeback reference a previous Deposit or Withdrawal by
// its Tx and ignore their own Amount.
type Transaction struct {
	Kind      Kind
	Client    ClientID
	Tx        TxID
	Amount    Amount
	HasAmount bool // HasAmount is false when the amount field was empty.

	disputed bool
}

// Disputed reports whether a retained transaction is currently under dispute.
func (t Transaction) Disputed() bool { return t.disputed }

func (t Transaction) String() string {
	if !t.HasAmount {
		return fmt.Sprintf("%s client=%d tx=%d", t.Kind, t.Client, t.Tx)
	}
	return fmt.Sprintf("%s client=%d tx=%d amount=%s", t.Kind, t.Client, t.Tx, t.Amount)
}

// NewDeposit creates a new deposit transaction.
func NewDeposit(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: KindDeposit, Client: client, Tx: tx, Amount: amount, HasAmount: true}
}

// NewWithdrawal creates a new withdrawal transaction.
func NewWithdrawal(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: KindWithdrawal, Client: client, Tx: tx, Amount: amount, HasAmount: true}
}

// NewDispute creates a dispute of the transaction 'tx'.
func NewDispute(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: KindDispute, Client: client, Tx: tx}
}

// NewResolve creates a resolve of the disputed transaction 'tx'.
func NewResolve(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: KindResolve, Client: client, Tx: tx}
}

// NewChargeback creates a chargeback of the disputed transaction 'tx'.
func NewChargeback(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: KindChargeback, Client: client, Tx: tx}
}
