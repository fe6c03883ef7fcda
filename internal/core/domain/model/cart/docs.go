// Package cart models the ephemeral, per-session medicine selection that
// precedes checkout. A cart has no identity of its own and never persists:
// it lives in the session store, clamps quantities to live stock instead of
// failing, and is materialized into an order exactly once at checkout.
package cart
