// Package server runs the optional Prometheus endpoint of the client.
//
// It owns the HTTP listener lifecycle: startup in the background and a
// graceful shutdown that waits for the serving goroutine to return.
package server
