// Package store defines the repository interfaces that mediate between
// the route handlers and the document store, together with the sentinel
// errors callers branch on. A lookup that finds nothing is a distinct
// outcome (the ErrNotFound family) from a connectivity or driver fault
// (*StoreError); every caller must handle both.
package store
