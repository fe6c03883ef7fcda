// Package order contains the order aggregate and its value objects.
//
// Order is the durable record of a completed checkout: an immutable header
// (customer, shipping contact, payment method), immutable line items with
// prices snapshotted at creation, and the mutable fulfillment state driven
// by the status state machine.
//
// The state machine enforces distinct policies per actor role: fulfillers
// advance strictly one step along Placed -> Packed -> Shipped -> Delivered,
// customers may cancel until delivery, and administrators assign fulfillers
// without touching the status. Payment reconciliation is interleaved with the
// machine: razorpay orders must be paid before advancing, cash orders become
// paid on delivery.
package order
