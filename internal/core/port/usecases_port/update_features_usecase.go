package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type UpdateFeaturesUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID string, features domain.Features) (*domain.AggregatedListing, error)
}
