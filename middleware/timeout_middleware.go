package middleware

import (
	"context"
	"time"

	"github.com/wudayu/retrofit/transport"
)

// Timeout bounds each call with a deadline. The transport observes the
// context and abandons the in-flight exchange when it expires.
func Timeout(timeout time.Duration) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, req)
		}
	}
}
