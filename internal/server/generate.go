// Package server provides HTTP server implementation for the Pokedex API.
//
// The server package is layered:
//
//   - Server: Core server struct with lifecycle management
//   - Config: Server configuration with sensible defaults
//   - Router: Route registration and middleware chain
//   - Handlers: HTTP request handlers organized by concern
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 8080
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv.Start() // Start background services
//	http.ListenAndServe(":8080", srv.Handler())
package server

//go:generate gomarkdoc --output README.md .
