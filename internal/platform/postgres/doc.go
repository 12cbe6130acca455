// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. All implementations accept a store.DBTX so they
// can run against either a connection pool or a transaction, and they
// translate driver errors into the sentinel errors defined in the
// store package.
package postgres
