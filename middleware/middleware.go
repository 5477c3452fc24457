// Package middleware provides composable wrappers around the client's
// request execution path.
package middleware

import (
	"context"

	"github.com/wudayu/retrofit/transport"
)

// Handler executes one request. The innermost handler is the transport's
// RoundTrip; middleware wrap around it.
type Handler func(ctx context.Context, req *transport.Request) (*transport.Response, error)

// Middleware wraps a Handler with extra behavior.
type Middleware func(next Handler) Handler

// Chain composes middlewares into one. The first middleware in the list
// becomes the outermost wrapper.
func Chain(middlewares ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
