// Package models defines the plain records exchanged between storage, the
// ledger calculator and the RPC layer.
//
// # Ledger Models
//
//   - Person: someone taking part in the shared ledger
//   - Expense: money paid by one person, divided into Splits
//   - Settlement: a real-world payment from one person to another
//
// # Accounts
//
//   - User: a registered account allowed to edit the ledger
//
// # Design Principles
//
//  1. Records are values: the calculator never mutates what it is given
//  2. Identifiers are uuid.UUID everywhere; uuid.Nil means "not set"
//  3. Amounts are float64 here and integer cents in storage
//  4. Relationships use IDs, never pointers
package models
