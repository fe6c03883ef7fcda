// Package kernel contains the shared kernel of the domain model: value
// objects used across aggregate boundaries.
//
// It provides:
//   - UUID: immutable identifier value object wrapping github.com/google/uuid
//   - Money: exact currency amounts in minor units
//   - Role: the actor roles (customer, delivery, admin) that authorization
//     and state-machine policies dispatch on
//
// All value objects follow the same conventions: constructor functions that
// validate their inputs, a Validate method that rejects zero values, and
// immutability after construction.
package kernel
