// Package migrations embeds the SQL schema for the sqlite character store.
package migrations

import "embed"

// FS holds the migration files applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
