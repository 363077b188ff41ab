// Package middleware contains the HTTP middleware stack: request IDs,
// request-scoped loggers, CORS, request logging, panic recovery, and the
// global error handler that shapes every failure response.
package middleware

import (
	"github.com/toodoo/backend/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// so routing setup wires a single object.
type Middlewares struct {
	// Global holds common middleware used across the whole API: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
