// Package migrations holds the SQL schema applied to a fresh database.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
