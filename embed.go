// Package tally exposes assets that are embedded into the binary.
package tally

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
