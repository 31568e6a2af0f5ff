package server

// Server defines the lifecycle contract for servers managed by this package.
//
// Run returns immediately and serves in the background, so a Server can be
// registered as a [workers.Worker]. Shutdown blocks until serving stopped.
type Server interface {
	// Run starts serving requests in the background.
	Run()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
