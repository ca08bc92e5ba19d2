package usecase

import (
	"context"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// PublishListingUseCase - пятый шаг workflow. Требует, чтобы шаги 1-4 уже
// были заполнены, переводит черновик в Published и публикует событие
// жизненного цикла.
//
// Черновик после публикации остается локальным: забор опубликованных
// записей бэкендом - отдельный пайплайн вне этого сервиса, и благодаря
// непересекающимся пространствам id более поздняя серверная копия
// сосуществует с локальной без коллизий.
type PublishListingUseCase struct {
	draftStore port.DraftStorePort
	events     port.ListingEventsPort
}

func NewPublishListingUseCase(draftStore port.DraftStorePort, events port.ListingEventsPort) *PublishListingUseCase {
	return &PublishListingUseCase{draftStore: draftStore, events: events}
}

func (uc *PublishListingUseCase) Execute(ctx context.Context, ownerID, listingID string) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "PublishListing",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	result, err := applyStepUpdate(ctx, uc.draftStore, ownerID, listingID, func(l *domain.Listing) error {
		if !domain.ReadyToPublish(*l) {
			return domain.NewValidationError("status", "all previous steps must be complete before publishing")
		}
		l.Status = domain.StatusPublished
		return nil
	})
	if err != nil {
		if domain.IsValidationError(err) {
			ucLogger.Warn("Listing is not ready to publish", port.Fields{"error": err.Error()})
		} else {
			ucLogger.Error("Failed to publish listing", err, nil)
		}
		return nil, wrapStepError("publish", err)
	}

	// Ошибка публикации события не откатывает уже сохраненный статус:
	// событие информационное, консистентность хранилища от него не зависит.
	if err := uc.events.PublishListingPublished(ctx, result.Listing); err != nil {
		ucLogger.Error("Failed to publish lifecycle event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"completion_percentage": result.Progress.CompletionPercentage,
	})
	return result, nil
}
