// Package server holds the HTTP server configuration for the schedule view.
//
// The serve command owns the Fiber application; this package only defines the
// listen port and the optional API key protecting the read-only endpoints.
package server
