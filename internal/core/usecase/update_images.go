package usecase

import (
	"context"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// UpdateImagesUseCase - редактор второго шага (медиа).
type UpdateImagesUseCase struct {
	draftStore port.DraftStorePort
}

func NewUpdateImagesUseCase(draftStore port.DraftStorePort) *UpdateImagesUseCase {
	return &UpdateImagesUseCase{draftStore: draftStore}
}

func (uc *UpdateImagesUseCase) Execute(ctx context.Context, ownerID, listingID string, upd domain.ImagesUpdate) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateImages",
		"owner_id":   ownerID,
		"listing_id": listingID,
		"images":     len(upd.Images),
	})

	ucLogger.Info("Use case started", nil)

	if upd.Thumbnail == "" && len(upd.Images) == 0 {
		ucLogger.Warn("Images validation failed: no media provided", nil)
		return nil, domain.NewValidationError("media", "thumbnail or at least one image is required")
	}

	result, err := applyStepUpdate(ctx, uc.draftStore, ownerID, listingID, func(l *domain.Listing) error {
		l.Media = &domain.Media{
			Thumbnail: upd.Thumbnail,
			Images:    upd.Images,
		}
		return nil
	})
	if err != nil {
		ucLogger.Error("Failed to apply images update", err, nil)
		return nil, wrapStepError("images", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"completion_percentage": result.Progress.CompletionPercentage,
		"current_step":          result.Progress.CurrentStep,
	})
	return result, nil
}
