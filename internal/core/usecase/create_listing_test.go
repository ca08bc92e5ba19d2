package usecase

import (
	"context"
	"testing"
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

func TestCreateListingPersistsEmptyDraft(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	uc := NewCreateListingUseCase(store)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	listing, err := uc.Execute(context.Background(), testOwnerID, domain.CategoryCorporate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if listing.Origin != domain.OriginLocal || listing.Status != domain.StatusDraft {
		t.Errorf("new listing must be a local draft, got origin=%s status=%s", listing.Origin, listing.Status)
	}
	if listing.CreatedAt != time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) {
		t.Errorf("created_at must come from the use case clock, got %v", listing.CreatedAt)
	}

	persisted, err := store.Get(context.Background(), testOwnerID, listing.ID)
	if err != nil {
		t.Fatalf("draft must be persisted: %v", err)
	}
	if persisted.ID != listing.ID {
		t.Error("persisted draft must match the returned one")
	}

	if p := domain.DeriveProgress(*listing); p.CompletedCount != 0 || p.CurrentStep != 0 {
		t.Errorf("fresh draft must start at step 0 with no progress, got %+v", p)
	}
}

func TestCreateListingRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	uc := NewCreateListingUseCase(store)

	_, err := uc.Execute(context.Background(), testOwnerID, domain.Category("residential"))
	if !domain.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if listings, _ := store.List(context.Background(), testOwnerID); len(listings) != 0 {
		t.Error("nothing must be persisted on validation failure")
	}
}
