package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRemoteListingIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := RemoteListingID(12345)
	if id != "backend_12345" {
		t.Errorf("unexpected derived id: %s", id)
	}

	backendID, ok := BackendID(id)
	if !ok {
		t.Fatal("derived id must be recognized as remote")
	}
	if backendID != 12345 {
		t.Errorf("expected backend id 12345, got %d", backendID)
	}
}

func TestBackendIDRejectsForeignIDs(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"12345",
		uuid.New().String(),
		"backend_",
		"backend_abc",
		"BACKEND_12345",
	}

	for _, id := range tests {
		if _, ok := BackendID(id); ok {
			t.Errorf("id %q must not be recognized as remote", id)
		}
	}
}

// Локальные id - это UUID, поэтому они никогда не попадают
// в remote-пространство и наоборот.
func TestIDSpacesAreDisjoint(t *testing.T) {
	t.Parallel()

	local := NewDraftListing("owner-1", CategoryCorporate, time.Now().UTC())
	if IsRemoteID(local.ID) {
		t.Errorf("local draft id %q must not look like a remote id", local.ID)
	}

	if !IsRemoteID(RemoteListingID(7)) {
		t.Error("derived remote id must be recognized as remote")
	}
}

func TestNewDraftListing(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewDraftListing("owner-1", CategoryPeerToPeer, now)

	if l.Origin != OriginLocal {
		t.Errorf("new draft must be local, got %s", l.Origin)
	}
	if l.Status != StatusDraft {
		t.Errorf("new draft must have draft status, got %s", l.Status)
	}
	if l.Category != CategoryPeerToPeer {
		t.Errorf("unexpected category: %s", l.Category)
	}
	if l.CreatedAt != now || l.UpdatedAt != now {
		t.Error("timestamps must be set from the provided clock")
	}
	if _, err := uuid.Parse(l.ID); err != nil {
		t.Errorf("draft id must be a uuid, got %q", l.ID)
	}
}

func TestListingLocation(t *testing.T) {
	t.Parallel()

	l := Listing{Address: "Main st. 1", Region: "Minsk Region"}
	if got := l.Location(); got != "Main st. 1, Minsk Region" {
		t.Errorf("unexpected location: %q", got)
	}

	empty := Listing{City: "   "}
	if got := empty.Location(); got != "" {
		t.Errorf("whitespace-only parts must be skipped, got %q", got)
	}
}

func TestFilterSpecMatches(t *testing.T) {
	t.Parallel()

	l := Listing{Category: CategoryCorporate, Status: StatusDraft}

	tests := []struct {
		name    string
		filters FilterSpec
		want    bool
	}{
		{"empty filters match everything", FilterSpec{}, true},
		{"category match", FilterSpec{Category: CategoryCorporate}, true},
		{"category mismatch", FilterSpec{Category: CategoryPeerToPeer}, false},
		{"status match", FilterSpec{Status: StatusDraft}, true},
		{"status mismatch", FilterSpec{Status: StatusPublished}, false},
		{"both match", FilterSpec{Category: CategoryCorporate, Status: StatusDraft}, true},
		{"one of two mismatches", FilterSpec{Category: CategoryCorporate, Status: StatusPublished}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filters.Matches(l); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
