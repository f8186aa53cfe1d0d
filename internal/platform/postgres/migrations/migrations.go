// Package migrations embeds the goose SQL migrations that own the database
// schema. They are applied by the migrate command and by the test database
// helpers.
package migrations

import "embed"

// Dir is the directory within FS that goose reads migrations from.
const Dir = "."

// FS holds the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
