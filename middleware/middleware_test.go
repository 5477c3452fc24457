package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wudayu/retrofit/transport"
)

// okHandler returns a 200 response immediately.
func okHandler(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	return &transport.Response{StatusCode: 200}, nil
}

// slowHandler takes 200ms unless the context expires first.
func slowHandler(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	select {
	case <-time.After(200 * time.Millisecond):
		return &transport.Response{StatusCode: 200}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func testRequest() *transport.Request {
	return &transport.Request{Method: "GET", URL: "http://example.com/ping"}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := Logging(zap.New(core))(okHandler)

	resp, err := handler(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expect status 200, got %d", resp.StatusCode)
	}
	if logs.Len() != 1 {
		t.Fatalf("expect 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "call completed" {
		t.Fatalf("expect 'call completed', got '%s'", entry.Message)
	}
}

func TestLoggingError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	failing := func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		return nil, errors.New("boom")
	}
	handler := Logging(zap.New(core))(failing)

	if _, err := handler(context.Background(), testRequest()); err == nil {
		t.Fatal("expect error to propagate through the logging middleware")
	}
	if logs.Len() != 1 || logs.All()[0].Message != "call failed" {
		t.Fatalf("expect a single 'call failed' entry, got %v", logs.All())
	}
}

func TestTimeoutPass(t *testing.T) {
	// Timeout 500ms, handler is fast, should return normally.
	handler := Timeout(500 * time.Millisecond)(okHandler)

	resp, err := handler(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expect status 200, got %d", resp.StatusCode)
	}
}

func TestTimeoutExceeded(t *testing.T) {
	// Timeout 50ms, handler needs 200ms, should time out.
	handler := Timeout(50 * time.Millisecond)(slowHandler)

	_, err := handler(context.Background(), testRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expect deadline exceeded, got %v", err)
	}
}

func TestRateLimit(t *testing.T) {
	// burst=2 → the first 2 calls pass immediately; the 3rd has to wait
	// and fails once the context is already expired.
	handler := RateLimit(1, 2)(okHandler)

	for i := 0; i < 2; i++ {
		if _, err := handler(context.Background(), testRequest()); err != nil {
			t.Fatalf("request %d should pass, got error: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := handler(ctx, testRequest()); err == nil {
		t.Fatal("request 3 should be rate limited")
	}
}

func TestChain(t *testing.T) {
	// Record the execution order to verify that the first middleware in
	// the list is the outermost wrapper.
	var order []string
	tag := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	handler := Chain(tag("outer"), tag("inner"))(okHandler)
	if _, err := handler(context.Background(), testRequest()); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("expect [outer inner], got %v", order)
	}
}
