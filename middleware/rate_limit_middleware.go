package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/wudayu/retrofit/transport"
)

// RateLimit applies a token-bucket limiter to outgoing calls, blocking
// until a token is available or the context is done.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next Handler) Handler {
		return func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}
