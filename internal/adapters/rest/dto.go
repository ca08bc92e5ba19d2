package rest

import (
	"time"

	"listing-lifecycle-service/internal/core/domain"
)

// CreateListingRequest - тело запроса на создание черновика.
type CreateListingRequest struct {
	Category string `json:"category"`
}

// BasicInfoRequest - тело запроса первого шага (базовая информация).
type BasicInfoRequest struct {
	Name         string  `json:"name"`
	PropertyType string  `json:"property_type"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Region       string  `json:"region"`
	Description  string  `json:"description"`
	Value        float64 `json:"value"`
	ROIPercent   float64 `json:"roi_percent"`
	YieldPercent float64 `json:"yield_percent"`
}

// ImagesRequest - тело запроса второго шага (медиа).
type ImagesRequest struct {
	Thumbnail string   `json:"thumbnail"`
	Images    []string `json:"images"`
}

// CoordinatesRequest - тело запроса третьего шага.
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FeaturesRequest - тело запроса четвертого шага (удобства).
type FeaturesRequest struct {
	Electricity bool `json:"electricity"`
	Water       bool `json:"water"`
	Parking     bool `json:"parking"`
	Furnished   bool `json:"furnished"`
	Security    bool `json:"security"`

	RoadQuality       string `json:"road_quality"`
	SchoolProximity   string `json:"school_proximity"`
	HospitalProximity string `json:"hospital_proximity"`
}

// RemoveListingRequest - тело запроса на удаление.
// Для локальных черновиков обязателен токен подтверждения.
type RemoveListingRequest struct {
	Confirmation string `json:"confirmation"`
}

// ProgressResponse - производный прогресс заполнения в ответе.
type ProgressResponse struct {
	Steps                []StepStateResponse `json:"steps"`
	CompletedCount       int                 `json:"completed_count"`
	CompletionPercentage int                 `json:"completion_percentage"`
	CurrentStep          int                 `json:"current_step"`
}

// StepStateResponse - состояние одного шага workflow в ответе.
type StepStateResponse struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// ListingResponse - карточка объявления в ответе API.
type ListingResponse struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	Category string `json:"category"`
	Status   string `json:"status"`

	Name         string `json:"name"`
	PropertyType string `json:"property_type"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Description  string `json:"description"`

	Value        float64 `json:"value"`
	ROIPercent   float64 `json:"roi_percent"`
	YieldPercent float64 `json:"yield_percent"`

	Media       *domain.Media       `json:"media,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Geohash     string              `json:"geohash,omitempty"`
	Features    *domain.Features    `json:"features,omitempty"`
	Engagement  *domain.Engagement  `json:"engagement,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Progress ProgressResponse `json:"progress"`
}

// AggregatedListResponse - ответ со слитым списком объявлений.
type AggregatedListResponse struct {
	Data            []ListingResponse `json:"data"`
	Total           int               `json:"total"`
	RemoteAvailable bool              `json:"remote_available"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toListingResponse маппит доменную запись с прогрессом в DTO ответа.
func toListingResponse(al domain.AggregatedListing) ListingResponse {
	l := al.Listing
	steps := make([]StepStateResponse, 0, domain.TotalSteps)
	for _, s := range al.Progress.Steps {
		steps = append(steps, StepStateResponse{
			Index:    s.Index,
			Name:     s.Name,
			Complete: s.Complete,
		})
	}

	return ListingResponse{
		ID:           l.ID,
		Origin:       string(l.Origin),
		Category:     string(l.Category),
		Status:       string(l.Status),
		Name:         l.Name,
		PropertyType: l.PropertyType,
		Address:      l.Address,
		City:         l.City,
		Region:       l.Region,
		Description:  l.Description,
		Value:        l.Value,
		ROIPercent:   l.ROIPercent,
		YieldPercent: l.YieldPercent,
		Media:        l.Media,
		Coordinates:  l.Coordinates,
		Geohash:      l.Geohash,
		Features:     l.Features,
		Engagement:   l.Engagement,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
		Progress: ProgressResponse{
			Steps:                steps,
			CompletedCount:       al.Progress.CompletedCount,
			CompletionPercentage: al.Progress.CompletionPercentage,
			CurrentStep:          al.Progress.CurrentStep,
		},
	}
}
