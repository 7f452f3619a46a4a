// Package openapi embeds the OpenAPI 3.0 specification for the Pokedex HTTP API.
// The YAML document is the source; the JSON form is derived from it once.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-yaml"
)

// SpecYAML contains the OpenAPI 3.0 specification in YAML format.
// Served at: GET /api/v1/openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

var specJSON = sync.OnceValues(func() ([]byte, error) {
	return yaml.YAMLToJSON(SpecYAML)
})

// SpecJSON returns the specification converted to JSON.
// Served at: GET /api/v1/openapi.json
func SpecJSON() ([]byte, error) {
	return specJSON()
}
