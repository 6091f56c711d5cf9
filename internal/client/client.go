// Package client contains the backend transport the admin panel talks
// through. The shipped implementation is a stub: every call is logged and
// answered with a canned success payload, and nothing in the editing core
// depends on these responses. A real HTTP client can replace StubClient
// behind the Transport interface without touching anything else.
package client

import (
	"context"
	"log"
	"strings"
	"time"
)

// Transport is the backend call surface: one method per HTTP verb, each
// taking an endpoint path relative to the configured base URL.
type Transport interface {
	Get(ctx context.Context, endpoint string) (map[string]any, error)
	Post(ctx context.Context, endpoint string, data any) (map[string]any, error)
	Put(ctx context.Context, endpoint string, data any) (map[string]any, error)
	Delete(ctx context.Context, endpoint string) (map[string]any, error)
}

// Config carries the connection settings a real transport would need.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StubClient logs every request and returns mock data instead of calling
// a backend.
type StubClient struct {
	cfg Config
}

func NewStubClient(cfg Config) *StubClient {
	return &StubClient{cfg: cfg}
}

// Get logs the request and returns a canned result set for known
// endpoints, or an empty result list otherwise.
func (s *StubClient) Get(ctx context.Context, endpoint string) (map[string]any, error) {
	log.Printf("GET %s%s", s.cfg.BaseURL, endpoint)
	return s.mockResponse(endpoint), nil
}

// Post logs the request and returns a success payload with a synthetic id.
func (s *StubClient) Post(ctx context.Context, endpoint string, data any) (map[string]any, error) {
	log.Printf("POST %s%s %v", s.cfg.BaseURL, endpoint, data)
	return map[string]any{"success": true, "id": time.Now().UnixMilli()}, nil
}

// Put logs the request and returns a success payload.
func (s *StubClient) Put(ctx context.Context, endpoint string, data any) (map[string]any, error) {
	log.Printf("PUT %s%s %v", s.cfg.BaseURL, endpoint, data)
	return map[string]any{"success": true}, nil
}

// Delete logs the request and returns a success payload.
func (s *StubClient) Delete(ctx context.Context, endpoint string) (map[string]any, error) {
	log.Printf("DELETE %s%s", s.cfg.BaseURL, endpoint)
	return map[string]any{"success": true}, nil
}

func (s *StubClient) mockResponse(endpoint string) map[string]any {
	switch {
	case strings.Contains(endpoint, "products"):
		return map[string]any{"results": []map[string]any{
			{"id": 1, "name": "Product 1", "price": 19.99},
			{"id": 2, "name": "Product 2", "price": 29.99},
		}}
	case strings.Contains(endpoint, "users"):
		return map[string]any{"results": []map[string]any{
			{"id": 1, "name": "User 1", "email": "user1@example.com"},
			{"id": 2, "name": "User 2", "email": "user2@example.com"},
		}}
	default:
		return map[string]any{"results": []map[string]any{}}
	}
}
