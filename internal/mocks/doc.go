// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes optional function fields to
// override behavior per test, with map-backed defaults that behave
// like a tiny in-memory store.
package mocks
