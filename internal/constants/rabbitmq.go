package constants

// Обменник событий жизненного цикла объявлений
const (
	ListingEventsExchange     = "listing_lifecycle_events"
	ListingEventsExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyListingPublished = "listing.lifecycle.published"
	RoutingKeyListingRemoved   = "listing.lifecycle.removed"
)

// Ключи схем контрактов событий
const (
	SchemaListingPublished = "ListingPublishedEvent/1.0.0"
	SchemaListingRemoved   = "ListingRemovedEvent/1.0.0"
)
