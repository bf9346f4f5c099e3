// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application itself; this package only
// defines where it listens and whether the API key middleware is active.
//
// # Configuration
//
// The Config struct defines the bind host, HTTP port, API key and whether
// the HTTP API is enabled at all.
package server
