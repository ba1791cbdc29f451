// Package migrations содержит SQL-миграции схемы PostgreSQL.
package migrations

import "embed"

// FS - встроенные файлы миграций goose.
//
//go:embed *.sql
var FS embed.FS
