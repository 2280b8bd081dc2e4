package entrypoint

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"plasmodocking/pkg/logger"
)

// Dialer opens TCP connections; *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// WaitForTCP blocks until a TCP connection to addr succeeds. It retries
// every interval without backoff. A zero timeout waits until ctx is done.
func WaitForTCP(ctx context.Context, d Dialer, addr string, interval, timeout time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	if d == nil {
		d = &net.Dialer{Timeout: interval}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx = logger.WithFields(ctx, zap.String("addr", addr))
	logger.Info(ctx, "waiting for dependency")

	start := time.Now()
	for attempt := 1; ; attempt++ {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			_ = conn.Close()
			logger.Info(ctx, "dependency is up", zap.Int("attempts", attempt), zap.Duration("elapsed", time.Since(start)))

			return nil
		}

		logger.Debug(ctx, "dependency not ready", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for %s after %d attempts: %w", addr, attempt, ctx.Err())
		case <-time.After(interval):
		}
	}
}
