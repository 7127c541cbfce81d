// Package migrations содержит SQL схему сервиса, встроенную в бинарник.
package migrations

import "embed"

// Dir - каталог миграций внутри FS.
const Dir = "."

// FS содержит файлы миграций golang-migrate.
//
//go:embed *.sql
var FS embed.FS
