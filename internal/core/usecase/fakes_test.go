package usecase

import (
	"context"
	"sync"

	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// fakeDraftStore - потокобезопасная in-memory реализация DraftStorePort
// с теми же краевыми семантиками, что у postgres-адаптера.
type fakeDraftStore struct {
	mu          sync.Mutex
	collections map[string][]domain.Listing

	listErr   error
	updateErr error
	removed   []string
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{collections: make(map[string][]domain.Listing)}
}

func (s *fakeDraftStore) seed(ownerID string, listings ...domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[ownerID] = append(s.collections[ownerID], listings...)
}

func (s *fakeDraftStore) List(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Listing, len(s.collections[ownerID]))
	copy(out, s.collections[ownerID])
	return out, nil
}

func (s *fakeDraftStore) Get(ctx context.Context, ownerID, id string) (*domain.Listing, error) {
	listings, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (s *fakeDraftStore) Upsert(ctx context.Context, ownerID string, listing domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.collections[ownerID] {
		if s.collections[ownerID][i].ID == listing.ID {
			s.collections[ownerID][i] = listing
			return nil
		}
	}
	s.collections[ownerID] = append(s.collections[ownerID], listing)
	return nil
}

func (s *fakeDraftStore) Update(ctx context.Context, ownerID, id string, fn port.UpdateFunc) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for i := range s.collections[ownerID] {
		if s.collections[ownerID][i].ID == id {
			updated, err := fn(s.collections[ownerID][i])
			if err != nil {
				return nil, err
			}
			updated.ID = id
			s.collections[ownerID][i] = updated
			return &updated, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (s *fakeDraftStore) RemoveByID(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := make([]domain.Listing, 0, len(s.collections[ownerID]))
	for _, l := range s.collections[ownerID] {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	s.collections[ownerID] = filtered
	s.removed = append(s.removed, id)
	return nil
}

// fakeBackendListings - фейковый клиент серверного API объявлений.
type fakeBackendListings struct {
	mu       sync.Mutex
	listings []domain.Listing

	fetchErr   error
	deleteErr  error
	fetchCalls int
	deleted    []int64
}

func (c *fakeBackendListings) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchCalls++
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	out := make([]domain.Listing, len(c.listings))
	copy(out, c.listings)
	return out, nil
}

func (c *fakeBackendListings) Delete(ctx context.Context, backendID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, backendID)
	return nil
}

type removedEvent struct {
	ownerID   string
	listingID string
	origin    domain.Origin
}

// fakeListingEvents записывает опубликованные события жизненного цикла.
type fakeListingEvents struct {
	mu         sync.Mutex
	publishErr error
	published  []domain.Listing
	removed    []removedEvent
}

func (e *fakeListingEvents) PublishListingPublished(ctx context.Context, listing domain.Listing) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.publishErr != nil {
		return e.publishErr
	}
	e.published = append(e.published, listing)
	return nil
}

func (e *fakeListingEvents) PublishListingRemoved(ctx context.Context, ownerID, listingID string, origin domain.Origin) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.publishErr != nil {
		return e.publishErr
	}
	e.removed = append(e.removed, removedEvent{ownerID: ownerID, listingID: listingID, origin: origin})
	return nil
}
