// Package api contains the HTTP handlers for the tasker API together
// with their request/response types. Handlers depend on the store
// interfaces and the auth service; they never talk to the database
// directly.
package api
