package postgres_adapter

import (
	"testing"
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

func draft(id string) domain.Listing {
	return domain.Listing{
		ID:        id,
		OwnerID:   "owner-1",
		Origin:    domain.OriginLocal,
		Category:  domain.CategoryCorporate,
		Status:    domain.StatusDraft,
		Name:      "Draft " + id,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	t.Parallel()

	original := []domain.Listing{draft("a"), draft("b")}

	payload, err := encodeCollection(original)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	decoded, ok := decodeCollection(payload)
	if !ok {
		t.Fatal("freshly encoded payload must decode cleanly")
	}
	if len(decoded) != 2 || decoded[0].ID != "a" || decoded[1].ID != "b" {
		t.Errorf("unexpected decoded collection: %+v", decoded)
	}
	if decoded[0].CreatedAt != original[0].CreatedAt {
		t.Error("timestamps must survive the round trip")
	}
}

func TestDecodeCollectionFailOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload []byte
		ok      bool
	}{
		{"empty payload", nil, true},
		{"corrupted json", []byte(`{"not": "a list"`), false},
		{"wrong shape", []byte(`{"id": "x"}`), false},
		{"json null", []byte(`null`), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Поврежденный payload деградирует до пустой коллекции,
			// а не до ошибки: список должен оставаться доступным.
			listings, ok := decodeCollection(tt.payload)
			if ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, ok)
			}
			if listings == nil {
				t.Error("decode must never return a nil collection")
			}
			if len(listings) != 0 {
				t.Errorf("expected empty collection, got %+v", listings)
			}
		})
	}
}

func TestUpsertListing(t *testing.T) {
	t.Parallel()

	collection := []domain.Listing{draft("a"), draft("b")}

	// Новая запись добавляется в конец.
	collection = upsertListing(collection, draft("c"))
	if len(collection) != 3 || collection[2].ID != "c" {
		t.Fatalf("expected append, got %+v", collection)
	}

	// Существующая запись заменяется целиком на том же месте.
	updated := draft("b")
	updated.Name = "Renamed"
	collection = upsertListing(collection, updated)
	if len(collection) != 3 {
		t.Fatalf("replace must not grow the collection, got %d entries", len(collection))
	}
	if collection[1].Name != "Renamed" {
		t.Errorf("entry must be replaced in place: %+v", collection[1])
	}
}

func TestRemoveListing(t *testing.T) {
	t.Parallel()

	collection := []domain.Listing{draft("a"), draft("b"), draft("c")}

	collection = removeListing(collection, "b")
	if len(collection) != 2 || collection[0].ID != "a" || collection[1].ID != "c" {
		t.Errorf("unexpected collection after removal: %+v", collection)
	}

	// Отсутствующий id - no-op.
	collection = removeListing(collection, "missing")
	if len(collection) != 2 {
		t.Errorf("removal of a missing id must be a no-op, got %+v", collection)
	}
}
