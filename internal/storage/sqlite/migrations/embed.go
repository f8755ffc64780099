package migrations

import "embed"

// FS contains embedded SQLite migrations for dashboard content storage.
//
//go:embed *.sql
var FS embed.FS
