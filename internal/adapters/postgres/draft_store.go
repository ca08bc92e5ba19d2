package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDraftStore - реализация DraftStorePort поверх PostgreSQL.
// Одна строка таблицы = одна коллекция черновиков владельца:
//
//	CREATE TABLE vendor_draft_collections (
//	    owner_id   TEXT PRIMARY KEY,
//	    payload    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresDraftStore struct {
	pool *pgxpool.Pool
}

// NewPostgresDraftStore - конструктор.
func NewPostgresDraftStore(pool *pgxpool.Pool) (*PostgresDraftStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresDraftStore{pool: pool}, nil
}

// List возвращает все черновики владельца.
func (s *PostgresDraftStore) List(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "PostgresDraftStore",
		"method":    "List",
		"owner_id":  ownerID,
	})

	var payload []byte
	query := `SELECT payload FROM vendor_draft_collections WHERE owner_id = $1`
	err := s.pool.QueryRow(ctx, query, ownerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Коллекции еще нет - пустой список, не ошибка.
			return []domain.Listing{}, nil
		}
		storeLogger.Error("Failed to read draft collection", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to read draft collection: %w", err)
	}

	listings, ok := decodeCollection(payload)
	if !ok {
		// Fail-open: поврежденный payload не роняет список, но это
		// потенциальная потеря данных и она обязана быть в логах.
		storeLogger.Warn("Draft collection payload is corrupted, treating as empty", port.Fields{
			"payload_bytes": len(payload),
		})
	}
	return listings, nil
}

// Get возвращает черновик по id.
func (s *PostgresDraftStore) Get(ctx context.Context, ownerID, id string) (*domain.Listing, error) {
	listings, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Upsert заменяет запись целиком или добавляет новую.
func (s *PostgresDraftStore) Upsert(ctx context.Context, ownerID string, listing domain.Listing) error {
	_, err := s.withCollection(ctx, ownerID, "Upsert", func(listings []domain.Listing) ([]domain.Listing, *domain.Listing, error) {
		updated := upsertListing(listings, listing)
		return updated, &listing, nil
	})
	return err
}

// Update выполняет read-modify-write атомарно: строка коллекции берется
// под SELECT ... FOR UPDATE, поэтому параллельные редакторы одного
// объявления не затирают правки друг друга.
func (s *PostgresDraftStore) Update(ctx context.Context, ownerID, id string, fn port.UpdateFunc) (*domain.Listing, error) {
	return s.withCollection(ctx, ownerID, "Update", func(listings []domain.Listing) ([]domain.Listing, *domain.Listing, error) {
		for i := range listings {
			if listings[i].ID == id {
				updated, err := fn(listings[i])
				if err != nil {
					return nil, nil, err
				}
				// Id под fn менять нельзя: запись идентифицируется им.
				updated.ID = id
				listings[i] = updated
				return listings, &updated, nil
			}
		}
		return nil, nil, domain.ErrListingNotFound
	})
}

// RemoveByID удаляет черновик. Отсутствующий id - no-op.
func (s *PostgresDraftStore) RemoveByID(ctx context.Context, ownerID, id string) error {
	_, err := s.withCollection(ctx, ownerID, "RemoveByID", func(listings []domain.Listing) ([]domain.Listing, *domain.Listing, error) {
		return removeListing(listings, id), nil, nil
	})
	return err
}

// withCollection - общий транзакционный цикл: читаем строку коллекции с
// блокировкой, применяем мутацию, пишем payload обратно.
func (s *PostgresDraftStore) withCollection(
	ctx context.Context,
	ownerID string,
	method string,
	mutate func([]domain.Listing) ([]domain.Listing, *domain.Listing, error),
) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "PostgresDraftStore",
		"method":    method,
		"owner_id":  ownerID,
	})

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		storeLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var payload []byte
	lockQuery := `SELECT payload FROM vendor_draft_collections WHERE owner_id = $1 FOR UPDATE`
	err = tx.QueryRow(ctx, lockQuery, ownerID).Scan(&payload)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		storeLogger.Error("Failed to lock draft collection", err, port.Fields{"query": lockQuery})
		return nil, fmt.Errorf("failed to lock draft collection: %w", err)
	}

	listings, ok := decodeCollection(payload)
	if !ok {
		storeLogger.Warn("Draft collection payload is corrupted, treating as empty", nil)
	}

	mutated, result, err := mutate(listings)
	if err != nil {
		return nil, err
	}

	newPayload, err := encodeCollection(mutated)
	if err != nil {
		storeLogger.Error("Failed to encode draft collection", err, nil)
		return nil, fmt.Errorf("failed to encode draft collection: %w", err)
	}

	upsertQuery := `
		INSERT INTO vendor_draft_collections (owner_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := tx.Exec(ctx, upsertQuery, ownerID, newPayload); err != nil {
		storeLogger.Error("Failed to write draft collection", err, port.Fields{"query": upsertQuery})
		return nil, fmt.Errorf("failed to write draft collection: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		storeLogger.Error("Failed to commit transaction", err, nil)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	storeLogger.Debug("Draft collection updated", port.Fields{"drafts_count": len(mutated)})
	return result, nil
}
