package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-lifecycle-service/internal/core/domain"
)

func TestRemoveListingLocalDraftWithConfirmation(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
	backend := &fakeBackendListings{}
	events := &fakeListingEvents{}

	uc := NewRemoveListingUseCase(store, backend, events)

	if err := uc.Execute(context.Background(), testOwnerID, "draft-a", RemovalConfirmationToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.removed) != 1 || store.removed[0] != "draft-a" {
		t.Errorf("draft must be removed from the local store, removed: %v", store.removed)
	}
	// Удаление локального черновика не ходит в сеть.
	if backend.fetchCalls != 0 || len(backend.deleted) != 0 {
		t.Error("local draft removal must not touch the backend")
	}
	if len(events.removed) != 1 || events.removed[0].origin != domain.OriginLocal {
		t.Errorf("expected one local removal event, got %+v", events.removed)
	}
}

func TestRemoveListingLocalDraftRequiresConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		confirmation string
	}{
		{"empty token", ""},
		{"wrong token", "DELETE"},
		{"lowercase token", "remove"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeDraftStore()
			store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
			uc := NewRemoveListingUseCase(store, &fakeBackendListings{}, &fakeListingEvents{})

			err := uc.Execute(context.Background(), testOwnerID, "draft-a", tt.confirmation)
			if !errors.Is(err, domain.ErrConfirmationRequired) {
				t.Fatalf("expected ErrConfirmationRequired, got %v", err)
			}
			if len(store.removed) != 0 {
				t.Error("draft must survive a rejected removal")
			}
		})
	}
}

func TestRemoveListingRemoteDelegatesToBackend(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
	backend := &fakeBackendListings{}
	events := &fakeListingEvents{}

	uc := NewRemoveListingUseCase(store, backend, events)

	// Подтверждение для remote-записей не требуется: бэкенд сам решает.
	if err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(42), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(backend.deleted) != 1 || backend.deleted[0] != 42 {
		t.Errorf("expected backend delete of id 42, got %v", backend.deleted)
	}
	if len(store.removed) != 0 {
		t.Error("remote removal must not touch the draft store")
	}
	if len(events.removed) != 1 || events.removed[0].origin != domain.OriginRemote {
		t.Errorf("expected one remote removal event, got %+v", events.removed)
	}
}

func TestRemoveListingRemoteBackendFailure(t *testing.T) {
	t.Parallel()

	backend := &fakeBackendListings{deleteErr: domain.ErrBackendUnavailable}
	events := &fakeListingEvents{}
	uc := NewRemoveListingUseCase(newFakeDraftStore(), backend, events)

	err := uc.Execute(context.Background(), testOwnerID, domain.RemoteListingID(42), "")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("backend failure must surface to the caller, got %v", err)
	}
	if len(events.removed) != 0 {
		t.Error("no removal event on a failed backend delete")
	}
}

func TestRemoveListingEventFailureDoesNotFailRemoval(t *testing.T) {
	t.Parallel()

	store := newFakeDraftStore()
	store.seed(testOwnerID, localDraft("draft-a", domain.CategoryCorporate))
	events := &fakeListingEvents{publishErr: errors.New("broker down")}

	uc := NewRemoveListingUseCase(store, &fakeBackendListings{}, events)

	if err := uc.Execute(context.Background(), testOwnerID, "draft-a", RemovalConfirmationToken); err != nil {
		t.Fatalf("event publish failure must not fail the removal: %v", err)
	}
	if len(store.removed) != 1 {
		t.Error("draft must still be removed")
	}
}
