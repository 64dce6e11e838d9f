// Package migrations embeds the SQLite schema migrations for the game store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
