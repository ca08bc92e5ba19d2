package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type GetListingUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID string) (*domain.AggregatedListing, error)
}
