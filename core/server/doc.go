// Package server holds the history API server configuration.
//
// The serve command reads the listen address and the optional API key from here.
// When an API key is set every request must present it (see core/middleware/auth).
package server
