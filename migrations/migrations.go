package migrations

import "embed"

// FS содержит SQL-миграции схемы, встраиваемые в бинарник
//
//go:embed *.sql
var FS embed.FS
