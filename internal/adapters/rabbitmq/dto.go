package rabbitmq

// DTO событий жизненного цикла. Формат закреплен JSON Schema контрактами
// в schemas/events; payload валидируется по ним перед публикацией.

type listingPublishedEventDTO struct {
	EventID     string `json:"event_id"`
	OwnerID     string `json:"owner_id"`
	ListingID   string `json:"listing_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Geohash     string `json:"geohash,omitempty"`
	PublishedAt string `json:"published_at"`
}

type listingRemovedEventDTO struct {
	EventID   string `json:"event_id"`
	OwnerID   string `json:"owner_id"`
	ListingID string `json:"listing_id"`
	Origin    string `json:"origin"`
	RemovedAt string `json:"removed_at"`
}
