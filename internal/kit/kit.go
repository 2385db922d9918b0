// CLAUDE:SUMMARY Transport kit: Endpoint and Middleware abstractions shared by the MCP tool registrations.
package kit

import "context"

// Endpoint is one transport-agnostic operation: a typed request in, a
// response out. Tool registrations wrap Endpoints so the grid logic never
// sees transport types.
type Endpoint func(ctx context.Context, request any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behavior.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first one listed is the outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
