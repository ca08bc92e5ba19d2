package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type UpdateCoordinatesUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID string, upd domain.CoordinatesUpdate) (*domain.AggregatedListing, error)
}
