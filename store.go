package txledger

// TransactionStore retains deposits and withdrawals by transaction id so that
// later disputes can reference them.
type TransactionStore struct {
	transactions map[TxID]*Transaction
}

// NewTransactionStore creates an empty store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{transactions: make(map[TxID]*Transaction)}
}

// Insert retains a deposit or a withdrawal, replacing any previous one with
// the same id. Other kinds are ignored.
func (s *TransactionStore) Insert(tx Transaction) {
	if !tx.Kind.movesFunds() {
		return
	}
	s.transactions[tx.Tx] = &tx
}

// Contains reports whether a transaction with this id is retained.
func (s *TransactionStore) Contains(id TxID) bool {
	_, ok := s.transactions[id]
	return ok
}

// Get returns the retained transaction, so its dispute flag can be updated.
func (s *TransactionStore) Get(id TxID) (*Transaction, bool) {
	tx, ok := s.transactions[id]
	return tx, ok
}

// Len returns the number of retained transactions.
func (s *TransactionStore) Len() int { return len(s.transactions) }
