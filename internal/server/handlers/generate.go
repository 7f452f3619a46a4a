// Package handlers provides HTTP request handlers for the Pokedex API.
//
// Handlers are organized by concern:
//
//   - pokemon.go: Collection query and point lookups
//   - aggregates.go: Totals, histograms and distinct lists
//   - health.go: Health and readiness checks
//   - metrics.go: Text metrics
//   - openapi.go: OpenAPI specification endpoints
//
// All handlers follow a consistent pattern:
//
//  1. Fetch the catalog loaded at startup
//  2. Validate input
//  3. Query the catalog (aggregates go through the cache)
//  4. Return response
//
// Handlers use dependency injection for testability and receive all
// dependencies through the Handlers struct.
package handlers

//go:generate gomarkdoc --output README.md .
