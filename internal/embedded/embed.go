// Package embedded bundles a sample catalog into the binary so the CLI and
// server run without a data file.
package embedded

import (
	"embed"
)

// FS embeds the sample pokemon catalog at build time.
//
//go:embed catalog/*
var FS embed.FS

// CatalogPath is the path of the sample catalog inside FS.
const CatalogPath = "catalog/pokemon.json"
