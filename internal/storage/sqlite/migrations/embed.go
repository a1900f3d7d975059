package migrations

import "embed"

// FS contains embedded SQLite migrations for the contact submission log.
//
//go:embed *.sql
var FS embed.FS
