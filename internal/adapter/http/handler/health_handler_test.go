package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type snapshotStoreStub struct {
	loadFn func(ctx context.Context, key string) ([]byte, error)
	saveFn func(ctx context.Context, key string, value []byte) error
}

func (s *snapshotStoreStub) Load(ctx context.Context, key string) ([]byte, error) {
	return s.loadFn(ctx, key)
}

func (s *snapshotStoreStub) Save(ctx context.Context, key string, value []byte) error {
	return s.saveFn(ctx, key, value)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(&snapshotStoreStub{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Liveness(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness_StorageOK(t *testing.T) {
	handler := NewHealthHandler(&snapshotStoreStub{
		loadFn: func(ctx context.Context, key string) ([]byte, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	handler.Readiness(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" || resp["storage"] != "ok" {
		t.Fatalf("expected healthy response, got %v", resp)
	}
}

func TestHealthHandler_Readiness_StorageDown(t *testing.T) {
	handler := NewHealthHandler(&snapshotStoreStub{
		loadFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	handler.Readiness(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even when storage is down, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "degraded" || resp["storage"] != "unavailable" {
		t.Fatalf("expected degraded response, got %v", resp)
	}
}
