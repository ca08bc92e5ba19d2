package usecase

import (
	"context"
	"fmt"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// GetListingUseCase - origin-aware поиск объявления по id.
// Id из remote-пространства разрешаются через бэкенд, остальные - через
// локальное хранилище черновиков.
type GetListingUseCase struct {
	draftStore      port.DraftStorePort
	backendListings port.BackendListingsPort
}

func NewGetListingUseCase(draftStore port.DraftStorePort, backendListings port.BackendListingsPort) *GetListingUseCase {
	return &GetListingUseCase{draftStore: draftStore, backendListings: backendListings}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, ownerID, listingID string) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListing",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	var found *domain.Listing

	if domain.IsRemoteID(listingID) {
		// У бэкенда нет точечного GET по id владельца, поэтому ищем
		// в его списке. Список и так нужен экрану целиком.
		remote, err := uc.backendListings.FetchByOwner(ctx, ownerID)
		if err != nil {
			ucLogger.Error("Failed to fetch backend listings", err, nil)
			return nil, fmt.Errorf("failed to fetch backend listings: %w", err)
		}
		for i := range remote {
			if remote[i].ID == listingID {
				found = &remote[i]
				break
			}
		}
		if found == nil {
			ucLogger.Warn("Remote listing not found", nil)
			return nil, domain.ErrListingNotFound
		}
	} else {
		draft, err := uc.draftStore.Get(ctx, ownerID, listingID)
		if err != nil {
			if err == domain.ErrListingNotFound {
				ucLogger.Warn("Draft not found", nil)
				return nil, err
			}
			ucLogger.Error("Failed to read draft", err, nil)
			return nil, fmt.Errorf("failed to read draft: %w", err)
		}
		found = draft
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"origin": found.Origin})
	return &domain.AggregatedListing{
		Listing:  *found,
		Progress: domain.DeriveProgress(*found),
	}, nil
}
