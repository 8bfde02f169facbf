// Package travelcatalog holds assets that are embedded into the catalog binary.
package travelcatalog

import "embed"

// Migrations contains the goose SQL migrations for the catalog database.
//
//go:embed migrations/*.sql
var Migrations embed.FS
