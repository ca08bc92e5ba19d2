package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-lifecycle-service/internal/core/domain"
)

func TestGetListingResolvesLocalDraft(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
	backend := &fakeBackendListings{}

	uc := NewGetListingUseCase(store, backend)

	result, err := uc.Execute(context.Background(), testOwnerID, "draft-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Listing.ID != "draft-a" || result.Listing.Origin != domain.OriginLocal {
		t.Errorf("unexpected listing: %+v", result.Listing)
	}
	// Локальный id не должен вызывать поход на бэкенд.
	if backend.fetchCalls != 0 {
		t.Error("local lookup must not hit the backend")
	}
}

func TestGetListingResolvesRemoteThroughBackend(t *testing.T) {
	t.Parallel()

	backend := &fakeBackendListings{listings: []domain.Listing{
		remoteListing(10, domain.CategoryCorporate),
		remoteListing(11, domain.CategoryPeerToPeer),
	}}

	uc := NewGetListingUseCase(newFakeDraftStore(), backend)

	result, err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Listing.ID != domain.RemoteListingID(11) || result.Listing.Origin != domain.OriginRemote {
		t.Errorf("unexpected listing: %+v", result.Listing)
	}
	if result.Progress.CompletedCount == 0 {
		t.Error("remote listing progress must be derived, not zero")
	}
}

func TestGetListingNotFound(t *testing.T) {
	t.Parallel()

	uc := NewGetListingUseCase(newFakeDraftStore(), &fakeBackendListings{})

	if _, err := uc.Execute(context.Background(), testOwnerID, "missing-draft"); !errors.Is(err, domain.ErrListingNotFound) {
		t.Errorf("expected ErrListingNotFound for a missing draft, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(404)); !errors.Is(err, domain.ErrListingNotFound) {
		t.Errorf("expected ErrListingNotFound for a missing remote listing, got %v", err)
	}
}

func TestGetListingBackendFailure(t *testing.T) {
	t.Parallel()

	backend := &fakeBackendListings{fetchErr: domain.ErrBackendUnavailable}
	uc := NewGetListingUseCase(newFakeDraftStore(), backend)

	if _, err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(10)); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("backend failure must surface for remote lookups, got %v", err)
	}
}
