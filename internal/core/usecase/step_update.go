package usecase

import (
	"context"
	"fmt"
	"time"

	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// applyStepUpdate - общий путь всех редакторов шагов: защита от записи в
// remote-запись, атомарный read-modify-write через draft store и пересчет
// прогресса на свежей версии.
//
// У remote-записей пути обновления нет: бэкенд не предоставляет PATCH для
// опубликованных объявлений, поэтому попытка правки отклоняется явно,
// а не теряется молча.
func applyStepUpdate(
	ctx context.Context,
	draftStore port.DraftStorePort,
	ownerID, listingID string,
	mutate func(*domain.Listing) error,
) (*domain.AggregatedListing, error) {
	if domain.IsRemoteID(listingID) {
		return nil, domain.ErrRemoteListingImmutable
	}

	updated, err := draftStore.Update(ctx, ownerID, listingID, func(l domain.Listing) (domain.Listing, error) {
		if err := mutate(&l); err != nil {
			return domain.Listing{}, err
		}
		l.UpdatedAt = time.Now().UTC()
		return l, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.AggregatedListing{
		Listing:  *updated,
		Progress: domain.DeriveProgress(*updated),
	}, nil
}

// wrapStepError оборачивает инфраструктурные ошибки, не трогая доменные.
func wrapStepError(step string, err error) error {
	if err == domain.ErrListingNotFound ||
		err == domain.ErrRemoteListingImmutable ||
		domain.IsValidationError(err) {
		return err
	}
	return fmt.Errorf("%s step update failed: %w", step, err)
}
