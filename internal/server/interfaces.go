package server

// Server is the lifecycle returned by NewServer.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the drain timeout.
	Shutdown()
}
