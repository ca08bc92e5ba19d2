package backend_api_client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

func TestFetchByOwner(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/vendors/owner-1/properties" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": 42, "title": "Sunset Villa", "category": "corporate", "listed_date": "2026-01-15"}]}`))
	}))
	defer srv.Close()

	client := NewBackendAPIClient(srv.URL, "secret", time.Second)

	listings, err := client.FetchByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].ID != domain.RemoteListingID(42) || listings[0].Origin != domain.OriginRemote {
		t.Errorf("unexpected listing: %+v", listings[0])
	}
}

func TestFetchByOwnerNetworkError(t *testing.T) {
	t.Parallel()

	// Адрес без слушателя: соединение откажет сразу.
	client := NewBackendAPIClient("http://127.0.0.1:1", "secret", time.Second)

	_, err := client.FetchByOwner(context.Background(), "owner-1")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("network failure must map to ErrBackendUnavailable, got %v", err)
	}
}

func TestFetchByOwnerNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewBackendAPIClient(srv.URL, "secret", time.Second)

	if _, err := client.FetchByOwner(context.Background(), "owner-1"); err == nil {
		t.Fatal("non-200 response must be an error")
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/properties/42" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewBackendAPIClient(srv.URL, "secret", time.Second)

	if err := client.Delete(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExplicitFailureBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "listing is locked"}`))
	}))
	defer srv.Close()

	client := NewBackendAPIClient(srv.URL, "secret", time.Second)

	if err := client.Delete(context.Background(), 42); err == nil {
		t.Fatal("explicit success=false with an error must fail the delete")
	}
}
