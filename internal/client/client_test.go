package client

import (
	"context"
	"testing"
	"time"
)

func TestStubGetCannedResults(t *testing.T) {
	s := NewStubClient(Config{BaseURL: "https://api.example.com", Timeout: time.Second})
	ctx := context.Background()

	resp, err := s.Get(ctx, "/products")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	results, ok := resp["results"].([]map[string]any)
	if !ok || len(results) != 2 {
		t.Fatalf("products response = %v", resp)
	}

	resp, err = s.Get(ctx, "/status")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	results, ok = resp["results"].([]map[string]any)
	if !ok || len(results) != 0 {
		t.Fatalf("unknown endpoint response = %v", resp)
	}
}

func TestStubPostReportsSuccess(t *testing.T) {
	s := NewStubClient(Config{BaseURL: "https://api.example.com"})

	resp, err := s.Post(context.Background(), "/products", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if ok, _ := resp["success"].(bool); !ok {
		t.Fatalf("response = %v, want success", resp)
	}
	if _, ok := resp["id"]; !ok {
		t.Fatalf("response = %v, want synthetic id", resp)
	}
}
