package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"isbuldum/internal/config"
	"isbuldum/internal/domain/job"
	"isbuldum/internal/repository"
)

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	env := map[string]string{
		"APP_NAME":          "isbuldum",
		"APP_ENV":           "test",
		"HTTP_PORT":         "8080",
		"JWT_ACCESS_SECRET": "secret",
	}
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestContainer_MemoryMode(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	defer c.Close()

	if c.DB != nil || c.Redis != nil {
		t.Fatalf("expected no external connections")
	}
	if _, ok := c.Documents.(*repository.MemoryDocumentRepository); !ok {
		t.Fatalf("expected in-memory documents, got %T", c.Documents)
	}
}

func TestApp_Routes(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	defer c.Close()

	mem := c.Documents.(*repository.MemoryDocumentRepository)
	if err := mem.Put(job.CollectionPath, "x1", job.Listing{Title: "Backend", Company: "Acme", CreatedAt: time.Now().UnixMilli()}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := New(c)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("health: resp=%v err=%v", resp, err)
	}

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	var sr struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sr.Data) != 1 || sr.Data[0]["id"] != "x1" {
		t.Fatalf("unexpected jobs %v", sr.Data)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestListenAddr(t *testing.T) {
	for in, want := range map[string]string{"8080": ":8080", ":9000": ":9000", " 80 ": ":80"} {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ListenAddr(""); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
