// Package migrations holds the goose SQL migrations applied at startup.
package migrations

import "embed"

// FS contains every *.sql migration in lexical order.
//
//go:embed *.sql
var FS embed.FS
