package usecase

import (
	"context"
	"fmt"
	"time"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// CreateListingUseCase создает пустой локальный черновик (шаг 0, статус Draft).
type CreateListingUseCase struct {
	draftStore port.DraftStorePort
	now        func() time.Time
}

func NewCreateListingUseCase(draftStore port.DraftStorePort) *CreateListingUseCase {
	return &CreateListingUseCase{draftStore: draftStore, now: time.Now}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, ownerID string, category domain.Category) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"owner_id": ownerID,
		"category": category,
	})

	ucLogger.Info("Use case started", nil)

	if category != domain.CategoryCorporate && category != domain.CategoryPeerToPeer {
		ucLogger.Warn("Unknown listing category in request", port.Fields{"category": category})
		return nil, domain.NewValidationError("category", "must be corporate or peer_to_peer")
	}

	listing := domain.NewDraftListing(ownerID, category, uc.now().UTC())

	if err := uc.draftStore.Upsert(ctx, ownerID, listing); err != nil {
		ucLogger.Error("Failed to persist new draft", err, nil)
		return nil, fmt.Errorf("failed to persist new draft: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"listing_id": listing.ID})
	return &listing, nil
}
