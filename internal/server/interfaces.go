package server

// Server is the lifecycle contract satisfied by every transport server in
// this package. RunServer blocks until the listener stops; Shutdown drains
// in-flight requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
