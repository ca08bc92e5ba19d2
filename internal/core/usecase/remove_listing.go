package usecase

import (
	"context"
	"fmt"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// RemovalConfirmationToken - токен, который пользователь должен ввести,
// чтобы удалить локальный черновик. Удаление черновика немедленное и
// необратимое, поэтому требуется явное подтверждение.
const RemovalConfirmationToken = "REMOVE"

// RemoveListingUseCase маршрутизирует удаление по происхождению записи:
// локальные черновики удаляются из draft store без похода в сеть,
// remote-записи - через DELETE на бэкенде, draft store при этом не трогается.
type RemoveListingUseCase struct {
	draftStore      port.DraftStorePort
	backendListings port.BackendListingsPort
	events          port.ListingEventsPort
}

func NewRemoveListingUseCase(
	draftStore port.DraftStorePort,
	backendListings port.BackendListingsPort,
	events port.ListingEventsPort,
) *RemoveListingUseCase {
	return &RemoveListingUseCase{
		draftStore:      draftStore,
		backendListings: backendListings,
		events:          events,
	}
}

func (uc *RemoveListingUseCase) Execute(ctx context.Context, ownerID, listingID, confirmation string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "RemoveListing",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	if backendID, ok := domain.BackendID(listingID); ok {
		if err := uc.backendListings.Delete(ctx, backendID); err != nil {
			ucLogger.Error("Backend delete failed", err, port.Fields{"backend_id": backendID})
			return fmt.Errorf("backend delete failed: %w", err)
		}
		// Агрегированный список увидит удаление на следующем фетче;
		// синхронной инвалидации remote-представления нет.
		ucLogger.Info("Remote listing deleted at backend", port.Fields{"backend_id": backendID})
		uc.publishRemovedEvent(ctx, ucLogger, ownerID, listingID, domain.OriginRemote)
		return nil
	}

	if confirmation != RemovalConfirmationToken {
		ucLogger.Warn("Draft removal rejected: confirmation token mismatch", nil)
		return domain.ErrConfirmationRequired
	}

	if err := uc.draftStore.RemoveByID(ctx, ownerID, listingID); err != nil {
		ucLogger.Error("Failed to remove draft", err, nil)
		return fmt.Errorf("failed to remove draft: %w", err)
	}

	ucLogger.Info("Draft removed from local store", nil)
	uc.publishRemovedEvent(ctx, ucLogger, ownerID, listingID, domain.OriginLocal)

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

func (uc *RemoveListingUseCase) publishRemovedEvent(ctx context.Context, logger port.LoggerPort, ownerID, listingID string, origin domain.Origin) {
	if err := uc.events.PublishListingRemoved(ctx, ownerID, listingID, origin); err != nil {
		logger.Error("Failed to publish lifecycle event", err, port.Fields{"origin": origin})
	}
}
