// Package services contains domain services: operations that belong to the
// domain but do not fit a single aggregate. PaymentVerifier authenticates
// gateway payment callbacks against the merchant secret before an order may
// be marked paid.
package services
