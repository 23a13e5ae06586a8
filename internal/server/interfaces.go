package server

// Server is the lifecycle of the file-drop HTTP server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight uploads
	// and downloads to finish.
	Shutdown()
}
