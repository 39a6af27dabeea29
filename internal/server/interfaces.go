package server

// Server is the lifecycle of the reference backend.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and drains the open ones.
	Shutdown()
}
