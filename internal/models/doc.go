// Package models defines the core domain models for splitcycle.
//
// # Models
//
//   - Person: someone sharing expenses in the current cycle
//   - Expense: an amount paid by one person on behalf of everyone
//   - Settlement: the archived record of the transfers that closed a cycle
//   - SettlementItem: one transfer inside a Settlement
//
// # Design Principles
//
// 1. **Ids, not pointers**: an Expense names its payer by Person.ID and a
// SettlementItem names both sides by id. Lookups go through the ledger.
// 2. **Snapshots for history**: settlement items copy the display names of the
// people involved so history survives a person being removed.
// 3. **Derived totals are never stored independently**: Settlement.Total is
// always the sum of its items.
package models
