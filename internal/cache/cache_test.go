package cache

import (
	"context"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

// Custom flag for running tests against a real Redis server (REDIS_ADDR)
var runIntegration = flag.Bool("integration", false, "Run integration tests against a real Redis server")

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestKey(t *testing.T) {
	key := Key(puzzle.NewKey(1, 2, ""), "199\n200")

	if !strings.HasPrefix(key, "aoc2021:1:2:default:") {
		t.Errorf("unexpected key prefix: %s", key)
	}
	// sha256 hex digest
	if digest := key[strings.LastIndex(key, ":")+1:]; len(digest) != 64 {
		t.Errorf("expected 64 char digest, got %d", len(digest))
	}
}

func TestKey_DiffersByVariantAndInput(t *testing.T) {
	base := Key(puzzle.NewKey(1, 1, ""), "1\n2")

	if base == Key(puzzle.NewKey(1, 1, "loop"), "1\n2") {
		t.Error("expected different keys for different variants")
	}
	if base == Key(puzzle.NewKey(1, 1, ""), "1\n3") {
		t.Error("expected different keys for different inputs")
	}
	if base != Key(puzzle.NewKey(1, 1, "default"), "1\n2") {
		t.Error("expected identical keys for identical requests")
	}
}

func TestNopCache(t *testing.T) {
	var c Cache = NopCache{}
	ctx := context.Background()

	if err := c.Set(ctx, "k", 7); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if found {
		t.Error("NopCache must never report a hit")
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	if !*runIntegration {
		t.Skip("Skipping integration test. Use -integration flag to run")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 1, newTestLogger())
	if err != nil {
		t.Fatalf("ConnectRedis() failed: %v", err)
	}
	defer client.Close()

	c := NewRedisCache(client, time.Minute, newTestLogger())
	key := Key(puzzle.NewKey(1, 1, ""), t.Name())
	defer client.Del(ctx, key)

	if _, found, err := c.Get(ctx, key); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}
	if err := c.Set(ctx, key, 1451); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	answer, found, err := c.Get(ctx, key)
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if answer != 1451 {
		t.Errorf("expected 1451, got %d", answer)
	}
}

func TestConnectRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := ConnectRedis(ctx, "127.0.0.1:1", "", 1, newTestLogger())
	if err == nil {
		t.Fatal("expected error connecting to a closed port")
	}
	if !strings.Contains(err.Error(), "after 1 attempts") {
		t.Errorf("unexpected error: %v", err)
	}
}
