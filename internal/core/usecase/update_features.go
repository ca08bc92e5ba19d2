package usecase

import (
	"context"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// UpdateFeaturesUseCase - редактор четвертого шага (удобства).
// Пустая запись Features{} валидна: шаг считается заполненным по факту
// наличия записи, вендор мог осознанно ничего не отметить.
type UpdateFeaturesUseCase struct {
	draftStore port.DraftStorePort
}

func NewUpdateFeaturesUseCase(draftStore port.DraftStorePort) *UpdateFeaturesUseCase {
	return &UpdateFeaturesUseCase{draftStore: draftStore}
}

func (uc *UpdateFeaturesUseCase) Execute(ctx context.Context, ownerID, listingID string, features domain.Features) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateFeatures",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	result, err := applyStepUpdate(ctx, uc.draftStore, ownerID, listingID, func(l *domain.Listing) error {
		f := features
		l.Features = &f
		return nil
	})
	if err != nil {
		ucLogger.Error("Failed to apply features update", err, nil)
		return nil, wrapStepError("features", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"completion_percentage": result.Progress.CompletionPercentage,
		"current_step":          result.Progress.CurrentStep,
	})
	return result, nil
}
