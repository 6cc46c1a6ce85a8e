package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireInternalSnapshotToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		handler := RequireInternalSnapshotToken("secret", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/snapshots/live", nil)
		req.Header.Set("X-Internal-Snapshot-Token", "secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		handler := RequireInternalSnapshotToken("secret", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/snapshots/live", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		handler := RequireInternalSnapshotToken("secret", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/snapshots/live", nil)
		req.Header.Set("X-Internal-Snapshot-Token", "guess")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("unconfigured token reports unavailable", func(t *testing.T) {
		handler := RequireInternalSnapshotToken("", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/snapshots/live", nil)
		req.Header.Set("X-Internal-Snapshot-Token", "secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
	})
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://fplhub.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/events/7/bonus", nil)
	req.Header.Set("Origin", "https://fplhub.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://fplhub.example.com" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/events/7/bonus", nil)
	req.Header.Set("Origin", "https://fplhub.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://allowed.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/events/7/bonus", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	if shouldTraceRequest("/healthz") {
		t.Fatal("health probes must not be traced")
	}
	if !shouldTraceRequest("/v1/events/7/bonus") {
		t.Fatal("api routes must be traced")
	}
}
