package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wudayu/retrofit/transport"
)

// Logging logs one line per call: method, URL, outcome, and duration.
func Logging(logger *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("call failed", append(fields, zap.Error(err))...)
				return nil, err
			}
			logger.Info("call completed", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		}
	}
}
