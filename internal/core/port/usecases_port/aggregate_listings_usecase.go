package usecases_port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

type AggregateListingsUseCasePort interface {
	Execute(ctx context.Context, ownerID string, filters domain.FilterSpec) (*domain.AggregationResult, error)
}
