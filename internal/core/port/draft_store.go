package port

import (
	"context"
	"listing-lifecycle-service/internal/core/domain"
)

// UpdateFunc применяется к текущей версии черновика внутри транзакции
// и возвращает новую версию целиком. Ошибка отменяет запись.
type UpdateFunc func(domain.Listing) (domain.Listing, error)

// DraftStorePort - контракт локального хранилища черновиков.
// Вся коллекция владельца хранится как один сериализованный payload
// под одним ключом (owner_id).
type DraftStorePort interface {
	// List возвращает все черновики владельца. Отсутствие коллекции или
	// ошибка разбора payload трактуются как пустая коллекция (fail-open).
	List(ctx context.Context, ownerID string) ([]domain.Listing, error)

	// Get возвращает черновик по id или domain.ErrListingNotFound.
	Get(ctx context.Context, ownerID, id string) (*domain.Listing, error)

	// Upsert заменяет запись с совпадающим id или добавляет новую.
	// Это замена записи целиком, а не слияние по полям.
	Upsert(ctx context.Context, ownerID string, listing domain.Listing) error

	// Update выполняет read-modify-write атомарно относительно других
	// вызовов: редакторы шагов обязаны ходить через него, чтобы
	// параллельные правки разных подмножеств полей не терялись.
	Update(ctx context.Context, ownerID, id string, fn UpdateFunc) (*domain.Listing, error)

	// RemoveByID - чистый фильтр; удаление несуществующего id - no-op.
	RemoveByID(ctx context.Context, ownerID, id string) error
}
