// Package migrations embeds the goose SQL migrations so the server
// binary can bring the schema up to date at startup without shipping
// loose .sql files alongside it.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
