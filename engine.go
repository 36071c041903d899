package txledger

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
)

// Reasons for dropping a transaction. They are returned by [Engine.Apply]
// and never stop [Engine.Process].
var (
	ErrUnknownClient      = errors.New("first transaction of a client must be a deposit")
	ErrAccountLocked      = errors.New("account is locked")
	ErrUnknownTransaction = errors.New("referenced transaction not found")
	ErrNotDisputed        = errors.New("referenced transaction is not disputed")
	ErrInsufficientFunds  = errors.New("insufficient available funds")
	ErrMissingAmount      = errors.New("missing amount")
	ErrNegativeAmount     = errors.New("negative amount")
)

// Engine applies transactions to a ledger of client accounts.
//
// The engine exclusively owns its ledger and transaction store. It is not safe
// for concurrent use: transactions must be applied in their arrival order.
type Engine struct {
	ledger *Ledger
	store  *TransactionStore
	logger *slog.Logger
}

// NewEngine creates an engine with an empty ledger. Dropped transactions are
// logged at debug level to logger, which may be nil.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		ledger: NewLedger(),
		store:  NewTransactionStore(),
		logger: logger,
	}
}

// Ledger returns the engine's ledger. It must not be modified.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Process applies all transactions in order. It stops at the first decoding
// error; dropped transactions are only logged.
func (e *Engine) Process(transactions iter.Seq2[Transaction, error]) error {
	for tx, err := range transactions {
		if err != nil {
			return err
		}
		if err := e.Apply(tx); err != nil {
			e.logger.Debug("transaction dropped",
				"reason", err,
				"type", tx.Kind,
				"client", tx.Client,
				"tx", tx.Tx,
			)
		}
	}
	return nil
}

// Apply applies a single transaction.
//
// A non nil error means the transaction was dropped and the ledger is
// unchanged. Deposits and withdrawals of known clients are retained anyway.
func (e *Engine) Apply(tx Transaction) error {
	if tx.Kind.movesFunds() {
		if !tx.HasAmount {
			return ErrMissingAmount
		}
		if tx.Amount.IsNegative() {
			return ErrNegativeAmount
		}
	}

	account, ok := e.ledger.Get(tx.Client)
	if !ok {
		// a new account is defined by its opening deposit.
		if tx.Kind != KindDeposit {
			return ErrUnknownClient
		}
		if _, err := e.ledger.Initialize(tx.Client, tx.Amount); err != nil {
			return err
		}
		e.store.Insert(tx)
		return nil
	}

	// retained even if the account is locked.
	e.store.Insert(tx)

	if account.Locked() {
		return ErrAccountLocked
	}

	switch tx.Kind {
	case KindDeposit:
		account.Deposit(tx.Amount)
	case KindWithdrawal:
		if !account.Withdraw(tx.Amount) {
			return ErrInsufficientFunds
		}
	case KindDispute:
		ref, ok := e.store.Get(tx.Tx)
		if !ok {
			return ErrUnknownTransaction
		}
		ref.disputed = true
		account.Dispute(ref.Amount)
	case KindResolve:
		ref, err := e.disputed(tx.Tx)
		if err != nil {
			return err
		}
		account.Resolve(ref.Amount)
		ref.disputed = false
	case KindChargeback:
		ref, err := e.disputed(tx.Tx)
		if err != nil {
			return err
		}
		account.Chargeback(ref.Amount)
		ref.disputed = false
	default:
		return fmt.Errorf("unsupported transaction type %q", tx.Kind)
	}
	return nil
}

// disputed returns the retained transaction 'id' if it is under dispute.
func (e *Engine) disputed(id TxID) (*Transaction, error) {
	ref, ok := e.store.Get(id)
	if !ok {
		return nil, ErrUnknownTransaction
	}
	if !ref.disputed {
		return nil, ErrNotDisputed
	}
	return ref, nil
}
