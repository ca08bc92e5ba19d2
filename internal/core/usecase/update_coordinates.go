package usecase

import (
	"context"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"

	"github.com/mmcloughlin/geohash"
)

// UpdateCoordinatesUseCase - редактор третьего шага (координаты).
// Вместе с парой широта/долгота сохраняется geohash: по нему дальше
// группируются объявления по локации.
type UpdateCoordinatesUseCase struct {
	draftStore port.DraftStorePort
}

func NewUpdateCoordinatesUseCase(draftStore port.DraftStorePort) *UpdateCoordinatesUseCase {
	return &UpdateCoordinatesUseCase{draftStore: draftStore}
}

func (uc *UpdateCoordinatesUseCase) Execute(ctx context.Context, ownerID, listingID string, upd domain.CoordinatesUpdate) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateCoordinates",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	if upd.Latitude < -90 || upd.Latitude > 90 {
		ucLogger.Warn("Coordinates validation failed", port.Fields{"latitude": upd.Latitude})
		return nil, domain.NewValidationError("latitude", "must be between -90 and 90")
	}
	if upd.Longitude < -180 || upd.Longitude > 180 {
		ucLogger.Warn("Coordinates validation failed", port.Fields{"longitude": upd.Longitude})
		return nil, domain.NewValidationError("longitude", "must be between -180 and 180")
	}

	result, err := applyStepUpdate(ctx, uc.draftStore, ownerID, listingID, func(l *domain.Listing) error {
		l.Coordinates = &domain.Coordinates{
			Latitude:  upd.Latitude,
			Longitude: upd.Longitude,
		}
		l.Geohash = geohash.Encode(upd.Latitude, upd.Longitude)
		return nil
	})
	if err != nil {
		ucLogger.Error("Failed to apply coordinates update", err, nil)
		return nil, wrapStepError("coordinates", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"geohash":               result.Listing.Geohash,
		"completion_percentage": result.Progress.CompletionPercentage,
	})
	return result, nil
}
