// Package mocks provides mock implementations of the store and auth
// interfaces for testing. Each mock carries function fields for
// customizable behavior and a map-backed default implementation.
package mocks
