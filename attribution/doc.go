// Package attribution decides which host type a logger's calls are
// attributed to.
//
// A logger is usually named after the type that owns it, for example
// "org.example.billing.Invoice". A Resolver maps such a name back to a
// core.Source. The Registry resolver does this from types the host
// registered up front; Nop never resolves anything, which makes every
// logger fall back to name-only display.
//
// Some host types run on behalf of whatever the host considers current
// (a screen being shown, an action being executed). For those the
// captured source would be misleading, so a Predicate can mark a source
// as ambient-preferred: the logger then passes no source at all and the
// sink falls back to its own notion of the current context. Implements
// builds such a predicate from a set of marker interfaces.
package attribution
