// Package server runs the reference backend's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
