// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Data proxy ports are implemented by storage and client adapters and called
// by the application layer.
package ports
