package port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

// ListingEventsPort - контракт публикации событий жизненного цикла объявления.
// События информируют внешние пайплайны (индексация, уведомления) и не
// участвуют в консистентности самого хранилища: ошибка публикации логируется,
// но не откатывает уже выполненную операцию.
type ListingEventsPort interface {
	PublishListingPublished(ctx context.Context, listing domain.Listing) error
	PublishListingRemoved(ctx context.Context, ownerID, listingID string, origin domain.Origin) error
}
