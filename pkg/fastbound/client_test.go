package fastbound_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fastbound-gateway/pkg/fastbound"
)

func TestSubmitTransfer(t *testing.T) {
	var gotBody []byte
	var gotContentType string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test-account" || pass != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodPost || r.URL.Path != "/api/transfers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		var payload map[string]any
		if err := json.Unmarshal(gotBody, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload["note"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	defer ts.Close()

	client, err := fastbound.New("test-account", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		res, err := client.SubmitTransfer(ctx, fastbound.TransferPayload{
			Schema:         fastbound.SchemaTransfersPushV1,
			IdempotencyKey: "abc123",
			Transferor:     "1-23-456-78-9A-12345",
			Transferee:     "1-23-456-78-9B-54321",
			Items: []fastbound.Item{
				{Manufacturer: "Glock", Country: "Austria", Model: "G17", Serial: "ABC123456"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusCode != http.StatusOK || res.Body != "OK" {
			t.Errorf("unexpected result: %+v", res)
		}
		if gotContentType != "application/json" {
			t.Errorf("unexpected content type %q", gotContentType)
		}
		// An absent importer must serialize as null, never "".
		if !strings.Contains(string(gotBody), `"importer":null`) {
			t.Errorf("expected null importer, got body: %s", gotBody)
		}
		if !strings.Contains(string(gotBody), `"idempotency_key":"abc123"`) {
			t.Errorf("expected snake_case idempotency key, got body: %s", gotBody)
		}
	})

	t.Run("Nil Items Serialize As Empty Array", func(t *testing.T) {
		_, err := client.SubmitTransfer(ctx, fastbound.TransferPayload{
			Schema: fastbound.SchemaTransfersPushV1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(gotBody), `"items":[]`) {
			t.Errorf("expected empty items array, got body: %s", gotBody)
		}
	})

	t.Run("Server Error Still Reports Status And Body", func(t *testing.T) {
		res, err := client.SubmitTransfer(ctx, fastbound.TransferPayload{Note: "cause_500"})
		if err != nil {
			t.Fatalf("expected no error for completed exchange, got %v", err)
		}
		if res.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", res.StatusCode)
		}
		if !strings.Contains(res.Body, "boom") {
			t.Errorf("unexpected body: %q", res.Body)
		}
	})

	t.Run("Bad Credentials Flow", func(t *testing.T) {
		badClient, _ := fastbound.New("test-account", "wrong-key")
		badClient.WithBaseURL(ts.URL)
		res, err := badClient.SubmitTransfer(ctx, fastbound.TransferPayload{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", res.StatusCode)
		}
	})
}

func TestNewValidation(t *testing.T) {
	if _, err := fastbound.New("", "key"); err == nil {
		t.Errorf("expected error for empty account")
	}
	if _, err := fastbound.New("account", ""); err == nil {
		t.Errorf("expected error for empty API key")
	}
}

func TestAPIKeyLooksValid(t *testing.T) {
	if fastbound.APIKeyLooksValid("short") {
		t.Errorf("short key should not look valid")
	}
	if !fastbound.APIKeyLooksValid(strings.Repeat("k", 43)) {
		t.Errorf("43-char key should look valid")
	}
}

func TestBoundBook(t *testing.T) {
	mux := http.NewServeMux()

	var docServer *httptest.Server
	docServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer docServer.Close()

	mux.HandleFunc("/test-account/api/Downloads/BoundBook", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-AuditUser") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-AuditUser") == "not-ready@example.com" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"url": docServer.URL + "/book.pdf"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, _ := fastbound.New("test-account", "test-key")
	client.WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("Download Flow", func(t *testing.T) {
		url, err := client.RequestBoundBook(ctx, "auditor@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := client.FetchDocument(ctx, url)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(string(data), "%PDF") {
			t.Errorf("unexpected document contents: %q", data)
		}
	})

	t.Run("Not Ready Flow", func(t *testing.T) {
		_, err := client.RequestBoundBook(ctx, "not-ready@example.com")
		if !errors.Is(err, fastbound.ErrBoundBookNotReady) {
			t.Fatalf("expected ErrBoundBookNotReady, got %v", err)
		}
	})

	t.Run("Missing Audit User", func(t *testing.T) {
		if _, err := client.RequestBoundBook(ctx, ""); err == nil {
			t.Fatalf("expected error for missing audit user")
		}
	})
}
