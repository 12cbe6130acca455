// Package store defines the persistence interfaces used by the
// application services and handlers, together with the sentinel
// errors every implementation must return. Concrete implementations
// live under internal/platform.
package store
