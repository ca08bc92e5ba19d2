package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type CreateListingUseCasePort interface {
	Execute(ctx context.Context, ownerID string, category domain.Category) (*domain.Listing, error)
}
