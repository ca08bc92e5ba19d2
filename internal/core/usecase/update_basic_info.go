package usecase

import (
	"context"
	"strings"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// UpdateBasicInfoUseCase - редактор первого шага (базовая информация).
type UpdateBasicInfoUseCase struct {
	draftStore port.DraftStorePort
}

func NewUpdateBasicInfoUseCase(draftStore port.DraftStorePort) *UpdateBasicInfoUseCase {
	return &UpdateBasicInfoUseCase{draftStore: draftStore}
}

func (uc *UpdateBasicInfoUseCase) Execute(ctx context.Context, ownerID, listingID string, upd domain.BasicInfoUpdate) (*domain.AggregatedListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateBasicInfo",
		"owner_id":   ownerID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	// Обязательные поля шага проверяются до записи: шаг нельзя отметить
	// заполненным с пустым именем, типом или адресом.
	if err := validateBasicInfo(upd); err != nil {
		ucLogger.Warn("Basic info validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	result, err := applyStepUpdate(ctx, uc.draftStore, ownerID, listingID, func(l *domain.Listing) error {
		l.Name = upd.Name
		l.PropertyType = upd.PropertyType
		l.Address = upd.Address
		l.City = upd.City
		l.Region = upd.Region
		l.Description = upd.Description
		l.Value = upd.Value
		l.ROIPercent = upd.ROIPercent
		l.YieldPercent = upd.YieldPercent
		return nil
	})
	if err != nil {
		ucLogger.Error("Failed to apply basic info update", err, nil)
		return nil, wrapStepError("basic info", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"completion_percentage": result.Progress.CompletionPercentage,
		"current_step":          result.Progress.CurrentStep,
	})
	return result, nil
}

func validateBasicInfo(upd domain.BasicInfoUpdate) error {
	if strings.TrimSpace(upd.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(upd.PropertyType) == "" {
		return domain.NewValidationError("property_type", "is required")
	}
	if strings.TrimSpace(upd.Address) == "" && strings.TrimSpace(upd.City) == "" && strings.TrimSpace(upd.Region) == "" {
		return domain.NewValidationError("location", "at least one of address, city or region is required")
	}
	return nil
}
