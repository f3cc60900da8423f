// Package schemas embeds the goose migrations of the dictionary_entries store.
package schemas

import "embed"

// Migrations holds migrations/NNNNN_<name>.sql, applied in version order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
