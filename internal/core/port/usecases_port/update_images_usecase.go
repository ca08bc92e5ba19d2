package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type UpdateImagesUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID string, upd domain.ImagesUpdate) (*domain.AggregatedListing, error)
}
