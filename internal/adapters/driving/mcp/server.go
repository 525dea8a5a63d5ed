package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/huangli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Default HTTP rate limits.
const (
	DefaultRateLimit = 20.0
	DefaultBurst     = 40
)

// RateLimitConfig holds the HTTP request rate limit.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit. Zero or less disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// Server is the MCP server for Huangli.
type Server struct {
	ports     *Ports
	server    *mcp.Server
	rateLimit RateLimitConfig
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "Huangli",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
		rateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRateLimit,
			BurstSize:         DefaultBurst,
		},
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// SetRateLimit configures HTTP rate limiting. It has no effect on stdio.
func (s *Server) SetRateLimit(cfg RateLimitConfig) {
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 1
	}
	s.rateLimit = cfg
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server running on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.limit(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("MCP server listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// limit wraps next with a token bucket shared by all clients.
func (s *Server) limit(next http.Handler) http.Handler {
	if s.rateLimit.RequestsPerSecond <= 0 {
		return next
	}

	limiter := rate.NewLimiter(rate.Limit(s.rateLimit.RequestsPerSecond), s.rateLimit.BurstSize)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded for %s", r.RemoteAddr)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
