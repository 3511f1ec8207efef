// Package order contains the Order aggregate root and its line items.
//
// An Order together with its full set of line items is one consistency unit:
// they are created together, reconciled together on update, and destroyed
// together on delete. The aggregate enforces two standing invariants:
//
//   - an order always owns at least one line item
//   - once an order's status is terminal (currently "delivered"), neither the
//     order nor any of its line items may change through the guarded update path
//
// The status catalog and the terminal-status set are kept as data (maps) rather
// than hardcoded branches so new statuses or immutability rules can be added
// without touching the reconciliation logic.
package order
