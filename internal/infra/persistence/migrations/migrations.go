// Package migrations embeds the SQL schema migrations run by goose at startup.
package migrations

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed *.sql
var Migrations embed.FS
