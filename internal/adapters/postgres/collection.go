package postgres_adapter

import (
	"encoding/json"

	"listing-lifecycle-service/internal/core/domain"
)

// Вся коллекция черновиков владельца хранится одним сериализованным
// payload под одним ключом. Эти функции - единственное место, где
// описан формат payload.

// encodeCollection сериализует коллекцию черновиков в payload.
func encodeCollection(listings []domain.Listing) ([]byte, error) {
	if listings == nil {
		listings = []domain.Listing{}
	}
	return json.Marshal(listings)
}

// decodeCollection разбирает payload коллекции. Поврежденный или пустой
// payload трактуется как пустая коллекция (fail-open): доступность списка
// важнее сломанной записи, но факт потери обязан попасть в лог вызывающего.
func decodeCollection(payload []byte) ([]domain.Listing, bool) {
	if len(payload) == 0 {
		return []domain.Listing{}, true
	}
	var listings []domain.Listing
	if err := json.Unmarshal(payload, &listings); err != nil {
		return []domain.Listing{}, false
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, true
}

// upsertListing заменяет запись с совпадающим id или добавляет новую в конец.
// Замена записи целиком, а не слияние по полям.
func upsertListing(listings []domain.Listing, listing domain.Listing) []domain.Listing {
	for i := range listings {
		if listings[i].ID == listing.ID {
			listings[i] = listing
			return listings
		}
	}
	return append(listings, listing)
}

// removeListing - чистый фильтр по id. Отсутствующий id - no-op.
func removeListing(listings []domain.Listing, id string) []domain.Listing {
	filtered := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
