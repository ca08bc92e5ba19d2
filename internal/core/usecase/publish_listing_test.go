package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-lifecycle-service/internal/core/domain"
)

func readyDraft(id string) domain.Listing {
	l := localDraft(id, domain.CategoryCorporate)
	l.Name = "Sunset Villa"
	l.PropertyType = "house"
	l.City = "Minsk"
	l.Media = &domain.Media{Thumbnail: "t.jpg"}
	l.Coordinates = &domain.Coordinates{Latitude: 53.9, Longitude: 27.56}
	l.Features = &domain.Features{}
	return l
}

func TestPublishListingCompletesWorkflow(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, readyDraft("draft-a"))
	events := &fakeListingEvents{}

	uc := NewPublishListingUseCase(store, events)

	result, err := uc.Execute(context.Background(), testOwnerID, "draft-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Listing.Status != domain.StatusPublished {
		t.Errorf("expected published status, got %s", result.Listing.Status)
	}
	if result.Progress.CompletionPercentage != 100 {
		t.Errorf("expected 100%% after publish, got %d%%", result.Progress.CompletionPercentage)
	}
	// Опубликованный черновик остается в локальном хранилище.
	persisted, err := store.Get(context.Background(), testOwnerID, "draft-a")
	if err != nil {
		t.Fatalf("published draft must stay in the store: %v", err)
	}
	if persisted.Status != domain.StatusPublished {
		t.Errorf("persisted status must be published, got %s", persisted.Status)
	}
	if len(events.published) != 1 || events.published[0].ID != "draft-a" {
		t.Errorf("expected one published event, got %+v", events.published)
	}
}

func TestPublishListingRequiresCompletedSteps(t *testing.T) {
	t.Parallel()

	incomplete := readyDraft("draft-a")
	incomplete.Features = nil

	store := newFakeDraftStore()
	store.seed(testOwnerID, incomplete)
	events := &fakeListingEvents{}

	uc := NewPublishListingUseCase(store, events)

	_, err := uc.Execute(context.Background(), testOwnerID, "draft-a")
	if !domain.IsValidationError(err) {
		t.Fatalf("expected validation error for an incomplete draft, got %v", err)
	}

	persisted, _ := store.Get(context.Background(), testOwnerID, "draft-a")
	if persisted.Status != domain.StatusDraft {
		t.Errorf("rejected publish must not change the status, got %s", persisted.Status)
	}
	if len(events.published) != 0 {
		t.Error("no event must be emitted for a rejected publish")
	}
}

func TestPublishListingRejectsRemoteIDs(t *testing.T) {
	t.Parallel()

	uc := NewPublishListingUseCase(newFakeDraftStore(), &fakeListingEvents{})

	_, err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(42))
	if !errors.Is(err, domain.ErrRemoteListingImmutable) {
		t.Errorf("expected ErrRemoteListingImmutable, got %v", err)
	}
}

func TestPublishListingEventFailureDoesNotRollBack(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, readyDraft("draft-a"))
	events := &fakeListingEvents{publishErr: errors.New("broker down")}

	uc := NewPublishListingUseCase(store, events)

	result, err := uc.Execute(context.Background(), testOwnerID, "draft-a")
	if err != nil {
		t.Fatalf("event failure must not fail the publish: %v", err)
	}
	if result.Listing.Status != domain.StatusPublished {
		t.Errorf("status must be published despite the event failure, got %s", result.Listing.Status)
	}
}
