// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// TokenKey is the storage key the session mirrors its credential token under.
	TokenKey = "token"

	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// LoginPath is where the router sends unauthenticated navigation.
	LoginPath = "/login"
)
