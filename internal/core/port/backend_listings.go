package port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

// BackendListingsPort - контракт клиента, который общается с бэкендом объявлений.
type BackendListingsPort interface {
	// FetchByOwner возвращает опубликованные объявления владельца,
	// уже нормализованные в доменную модель (Origin=remote, Status=Published,
	// id с префиксом remote-пространства).
	FetchByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error)

	// Delete удаляет объявление на бэкенде по его числовому id.
	Delete(ctx context.Context, backendID int64) error
}
