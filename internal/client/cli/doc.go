// Package cli provides the interactive storefront client.
//
// Pages are reached with "go <path>"; every navigation goes through the
// router guard, so protected pages send a logged-out user to /login first
// and continue to the requested page once the login succeeds. Shortcuts
// cover the session (login, register, logout, whoami), the cart, orders
// and product reviews. /products takes ?category=<name> or
// ?sort=<field>&order=desc.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
