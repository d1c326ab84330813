package factory

import (
	"context"
	"testing"

	"github.com/dropspot/dropspot/internal/config"
)

func TestNewStoreMemory(t *testing.T) {
	cfg := &config.Config{DBDriver: "memory"}
	st, err := NewStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewStore returned error for memory: %v", err)
	}
	if st == nil {
		t.Fatalf("expected store instance, got nil")
	}
}

func TestNewStoreUnknownDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "dynamo"}
	if _, err := NewStore(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
