// Package server provides the HTTP server implementation for the Pokedex API.
//
// This file contains general API documentation annotations for Swag/OpenAPI generation.
// These annotations describe the overall API (title, version, security, etc.)
// while individual endpoint annotations live in the handler files.
package server

// @title Pokedex API
// @version 1.0
// @description Read-only REST API over a catalog of pokemon.
// @description
// @description Features:
// @description - Filtering by number, name, types, generation and move count
// @description - Stable sorting on any record attribute
// @description - Pagination with total count headers
// @description - Summary aggregates (species, type and generation histograms)
// @description - Rate limiting and optional API key authentication
//
// @contact.name Pokedex Project
// @contact.url https://github.com/agentstation/pokedex
//
// @license.name MIT
// @license.url https://github.com/agentstation/pokedex/blob/master/LICENSE
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for authentication (optional, configurable)
