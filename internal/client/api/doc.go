// Package api is the client's HTTP layer for the shop backend.
//
// # Overview
//
// Client wraps net/http with a fixed base URL (normally ending in /api) and a
// per-request timeout. Every request passes through a round-tripper that asks
// a TokenSource for the current credential token and, when there is one,
// attaches it as "Authorization: Bearer <token>". Nothing is attached when the
// source has no token.
//
// On a 2xx response the JSON body is decoded straight into the caller's value.
// Any failure, whether a transport error, a timeout or a non-2xx status,
// comes back as *Error carrying Message, Status and the raw response Data.
// Message is never empty.
//
// There is exactly one attempt per call: no retries, no backoff.
//
// The typed endpoint helpers (Login, Register, Products, Cart, Orders, ...)
// are thin wrappers over Do.
package api
