package usecase

import (
	"context"
	"fmt"
	"time"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// AggregateListingsUseCase сливает локальные черновики и опубликованные
// на бэкенде объявления в один логический список.
type AggregateListingsUseCase struct {
	draftStore      port.DraftStorePort
	backendListings port.BackendListingsPort
	fetchTimeout    time.Duration
}

func NewAggregateListingsUseCase(
	draftStore port.DraftStorePort,
	backendListings port.BackendListingsPort,
	fetchTimeout time.Duration,
) *AggregateListingsUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &AggregateListingsUseCase{
		draftStore:      draftStore,
		backendListings: backendListings,
		fetchTimeout:    fetchTimeout,
	}
}

type draftsResult struct {
	listings []domain.Listing
	err      error
}

type remoteResult struct {
	listings []domain.Listing
	err      error
}

func (uc *AggregateListingsUseCase) Execute(ctx context.Context, ownerID string, filters domain.FilterSpec) (*domain.AggregationResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AggregateListings",
		"owner_id": ownerID,
	})

	ucLogger.Info("Use case started", nil)

	// Оба источника читаются параллельно; порядок завершения не определен,
	// слияние происходит после того, как ответят оба. Таймаут общий:
	// зависший фетч не должен держать экран в вечной загрузке.
	fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	draftsCh := make(chan draftsResult, 1)
	remoteCh := make(chan remoteResult, 1)

	go func() {
		listings, err := uc.draftStore.List(fetchCtx, ownerID)
		draftsCh <- draftsResult{listings: listings, err: err}
	}()
	go func() {
		listings, err := uc.backendListings.FetchByOwner(fetchCtx, ownerID)
		remoteCh <- remoteResult{listings: listings, err: err}
	}()

	drafts := <-draftsCh
	remote := <-remoteCh

	if drafts.err != nil {
		// Хранилище черновиков уже деградирует до пустой коллекции при
		// ошибках разбора; сюда доходят только инфраструктурные ошибки.
		ucLogger.Error("Failed to read draft collection", drafts.err, nil)
		return nil, fmt.Errorf("failed to read draft collection: %w", drafts.err)
	}

	remoteAvailable := true
	if remote.err != nil {
		// Недоступный бэкенд не должен прятать черновики. Отдаем то,
		// что есть, и явно помечаем, что remote-источник не отвечал,
		// чтобы пустой аккаунт был отличим от упавшего фетча.
		ucLogger.Warn("Backend fetch failed, degrading to drafts only", port.Fields{
			"error": remote.err.Error(),
		})
		remoteAvailable = false
		remote.listings = nil
	}

	// Сначала черновики, затем remote-записи. Разрешение коллизий id не
	// требуется: пространства id не пересекаются по построению.
	merged := make([]domain.AggregatedListing, 0, len(drafts.listings)+len(remote.listings))
	for _, l := range drafts.listings {
		if filters.Matches(l) {
			merged = append(merged, domain.AggregatedListing{Listing: l, Progress: domain.DeriveProgress(l)})
		}
	}
	for _, l := range remote.listings {
		if filters.Matches(l) {
			merged = append(merged, domain.AggregatedListing{Listing: l, Progress: domain.DeriveProgress(l)})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"drafts_count":     len(drafts.listings),
		"remote_count":     len(remote.listings),
		"merged_count":     len(merged),
		"remote_available": remoteAvailable,
	})

	return &domain.AggregationResult{
		Listings:        merged,
		RemoteAvailable: remoteAvailable,
	}, nil
}
