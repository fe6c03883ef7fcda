// Package medicine contains the catalog aggregate and the inventory ledger.
//
// Medicine is an aggregate root combining display attributes, a unit price,
// and the available stock quantity. Stock changes only through the ledger
// operations Reserve (checkout) and Release (cancellation, restock), which
// keeps the "stock never negative, never oversold" invariant in one place.
package medicine
