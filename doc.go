// Package txledger processes a stream of client transactions into a ledger of
// client accounts.
//
// Transactions are read from CSV with a [Decoder] and applied in arrival order
// by an [Engine]:
//   - Deposits and withdrawals move funds. A client account is opened by its
//     first deposit, and a withdrawal is only applied if enough funds are
//     available.
//   - Disputes reference a previous deposit or withdrawal and hold its amount.
//     A resolve releases the held funds, while a chargeback removes them and
//     locks the account for good.
//
// Transactions that cannot be applied (unknown client or transaction, locked
// account, insufficient funds, ...) are dropped without changing the ledger.
//
// Once the stream is exhausted, the ledger is written as a report with
// [EncodeReport] or [EncodeReportJSONL].
//
// This package serves as the foundational logic for the `txproc`
// command-line tool.
package txledger
