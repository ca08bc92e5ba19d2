package backend_api_client

import (
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

// toDomainListing - трансляция схемы бэкенда поле-в-поле в единую доменную
// модель. Remote-запись всегда Published и всегда получает id с префиксом
// remote-пространства: клиент не имеет права на другие статусы серверных
// записей.
//
// Функция чистая и детерминированная: повторная нормализация того же
// ответа дает структурно идентичный результат. На этом держится
// стабильность ре-рендеров списка и дедупликация в агрегаторе.
func toDomainListing(dto vendorPropertyResponse, ownerID string) domain.Listing {
	l := domain.Listing{
		ID:      domain.RemoteListingID(dto.ID),
		OwnerID: ownerID,
		Origin:  domain.OriginRemote,
		Status:  domain.StatusPublished,

		Category:     mapCategory(dto.Category),
		Name:         dto.Title,
		PropertyType: dto.PropertyType,
		Address:      dto.Address,
		City:         dto.City,
		Region:       dto.Region,
		Description:  dto.Description,
		Value:        dto.Value,
		ROIPercent:   dto.ROIPercent,
		YieldPercent: dto.YieldPercent,

		Engagement: &domain.Engagement{
			Views:      dto.Views,
			Inquiries:  dto.Inquiries,
			Bookmarked: dto.Bookmarked,
		},

		CreatedAt: parseBackendDate(dto.ListedDate),
		UpdatedAt: parseBackendDate(dto.UpdatedDate),
	}

	if dto.Thumbnail != "" || len(dto.Images) > 0 {
		l.Media = &domain.Media{
			Thumbnail: dto.Thumbnail,
			Images:    dto.Images,
		}
	}

	if dto.Latitude != nil && dto.Longitude != nil {
		l.Coordinates = &domain.Coordinates{
			Latitude:  *dto.Latitude,
			Longitude: *dto.Longitude,
		}
	}

	if dto.Features != nil {
		l.Features = &domain.Features{
			Electricity:       dto.Features.Electricity,
			Water:             dto.Features.Water,
			Parking:           dto.Features.Parking,
			Furnished:         dto.Features.Furnished,
			Security:          dto.Features.Security,
			RoadQuality:       dto.Features.RoadQuality,
			SchoolProximity:   dto.Features.SchoolProximity,
			HospitalProximity: dto.Features.HospitalProximity,
		}
	}

	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = l.CreatedAt
	}

	return l
}

func mapCategory(raw string) domain.Category {
	switch raw {
	case "corporate":
		return domain.CategoryCorporate
	case "peer_to_peer", "p2p":
		return domain.CategoryPeerToPeer
	default:
		// Неизвестную категорию не выдумываем, оставляем как есть:
		// фильтр по точному совпадению ее просто не покажет.
		return domain.Category(raw)
	}
}

// parseBackendDate разбирает дату бэкенда (RFC3339 либо YYYY-MM-DD).
// Неразбираемая дата дает нулевое время, а не ошибку: ломать весь
// список из-за одного битого поля даты нельзя.
func parseBackendDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
