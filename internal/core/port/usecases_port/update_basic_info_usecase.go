package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type UpdateBasicInfoUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID string, upd domain.BasicInfoUpdate) (*domain.AggregatedListing, error)
}
