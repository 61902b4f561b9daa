// Package migrations embeds the SQL schema migrations applied by
// cmd/migration and the repository integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
