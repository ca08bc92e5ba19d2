package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

const testOwnerID = "3f1c8a1e-5b7c-4a5f-9a44-0de67a2d9f10"

func localDraft(id string, category domain.Category) domain.Listing {
	return domain.Listing{
		ID:       id,
		OwnerID:  testOwnerID,
		Origin:   domain.OriginLocal,
		Category: category,
		Status:   domain.StatusDraft,
		Name:     "Draft " + id,
	}
}

func remoteListing(backendID int64, category domain.Category) domain.Listing {
	return domain.Listing{
		ID:       domain.RemoteListingID(backendID),
		OwnerID:  testOwnerID,
		Origin:   domain.OriginRemote,
		Category: category,
		Status:   domain.StatusPublished,
		Name:     "Remote",
	}
}

func TestAggregateListingsMergesDraftsFirst(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID,
		localDraft("draft-a", domain.CategoryCorporate),
		localDraft("draft-b", domain.CategoryPeerToPeer),
	)
	backend := &fakeBackendListings{listings: []domain.Listing{
		remoteListing(10, domain.CategoryCorporate),
	}}

	uc := NewAggregateListingsUseCase(store, backend, time.Second)

	result, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.RemoteAvailable {
		t.Error("remote source responded, RemoteAvailable must be true")
	}
	if len(result.Listings) != 3 {
		t.Fatalf("expected 3 merged listings, got %d", len(result.Listings))
	}

	wantOrder := []string{"draft-a", "draft-b", domain.RemoteListingID(10)}
	for i, want := range wantOrder {
		if result.Listings[i].Listing.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, result.Listings[i].Listing.ID)
		}
	}
}

func TestAggregateListingsAnnotatesProgress(t *testing.T) {
	t.Parallel()

	draft := localDraft("draft-a", domain.CategoryCorporate)
	draft.PropertyType = "house"
	draft.City = "Minsk"

	store := newFakeDraftStore()
	store.seed(testOwnerID, draft)
	backend := &fakeBackendListings{}

	uc := NewAggregateListingsUseCase(store, backend, time.Second)

	result, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(result.Listings))
	}

	got := result.Listings[0].Progress
	want := domain.DeriveProgress(draft)
	if got != want {
		t.Errorf("progress must be derived from listing fields: got %+v, want %+v", got, want)
	}
}

func TestAggregateListingsAppliesFilters(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID,
		localDraft("draft-a", domain.CategoryCorporate),
		localDraft("draft-b", domain.CategoryPeerToPeer),
	)
	backend := &fakeBackendListings{listings: []domain.Listing{
		remoteListing(10, domain.CategoryCorporate),
		remoteListing(11, domain.CategoryPeerToPeer),
	}}

	uc := NewAggregateListingsUseCase(store, backend, time.Second)

	// Фильтры независимы: любой порядок их задания дает один результат.
	byCategory, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{Category: domain.CategoryCorporate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCategory.Listings) != 2 {
		t.Fatalf("expected 2 corporate listings, got %d", len(byCategory.Listings))
	}

	both, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{
		Category: domain.CategoryCorporate,
		Status:   domain.StatusPublished,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(both.Listings) != 1 || both.Listings[0].Listing.ID != domain.RemoteListingID(10) {
		t.Errorf("combined filters must leave only the published corporate remote listing, got %+v", both.Listings)
	}
}

func TestAggregateListingsDegradesWhenBackendFails(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
	backend := &fakeBackendListings{fetchErr: domain.ErrBackendUnavailable}

	uc := NewAggregateListingsUseCase(store, backend, time.Second)

	result, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{})
	if err != nil {
		t.Fatalf("backend failure must not fail the whole aggregation: %v", err)
	}

	if result.RemoteAvailable {
		t.Error("RemoteAvailable must be false when the backend fetch fails")
	}
	if len(result.Listings) != 1 || result.Listings[0].Listing.ID != "draft-a" {
		t.Errorf("drafts must still be served, got %+v", result.Listings)
	}
}

func TestAggregateListingsFailsWhenDraftStoreFails(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.listErr = errors.New("connection refused")
	backend := &fakeBackendListings{}

	uc := NewAggregateListingsUseCase(store, backend, time.Second)

	if _, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{}); err == nil {
		t.Fatal("draft store failure is fatal for aggregation")
	}
}

func TestAggregateListingsEmptySources(t *testing.T) {
	t.Parallel()

	uc := NewAggregateListingsUseCase(newFakeDraftStore(), &fakeBackendListings{}, time.Second)

	result, err := uc.Execute(context.Background(), testOwnerID, domain.FilterSpec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Listings) != 0 {
		t.Errorf("expected empty result, got %d listings", len(result.Listings))
	}
	if !result.RemoteAvailable {
		t.Error("empty account is not the same as an unavailable backend")
	}
}
