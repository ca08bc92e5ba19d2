package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Origin показывает, в каком хранилище живет "авторитетная" копия объявления.
// Локальные черновики живут только в draft store, опубликованные на бэкенде
// объявления доступны только через backend client. Один владелец на запись.
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

// Category - тип размещения объявления.
type Category string

const (
	CategoryCorporate  Category = "corporate"
	CategoryPeerToPeer Category = "peer_to_peer"
)

// Status - статус жизненного цикла объявления.
// Локальные черновики всегда Draft, пока операция публикации их не повысит.
// Пришедшие с бэкенда записи всегда Published: клиент не имеет права
// создавать "удаленное" состояние на сервере, удаление делегируется бэкенду.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusRemoved   Status = "removed"
)

// remoteIDPrefix - фиксированный префикс для id, производных от числового id бэкенда.
// Локальные id - это UUID, поэтому два пространства id не пересекаются по построению.
const remoteIDPrefix = "backend_"

// Coordinates - пара широта/долгота. Обе координаты обязательны вместе.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Media - миниатюра и набор изображений объявления.
type Media struct {
	Thumbnail string   `json:"thumbnail,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// Features - структурированная запись об удобствах и коммуникациях.
// Для шага workflow важен сам факт наличия записи, а не ее наполнение:
// пустая структура Features{} считается заполненным шагом.
type Features struct {
	Electricity bool `json:"electricity"`
	Water       bool `json:"water"`
	Parking     bool `json:"parking"`
	Furnished   bool `json:"furnished"`
	Security    bool `json:"security"`

	RoadQuality       string `json:"road_quality,omitempty"`       // good | average | poor
	SchoolProximity   string `json:"school_proximity,omitempty"`   // near | moderate | far
	HospitalProximity string `json:"hospital_proximity,omitempty"` // near | moderate | far
}

// Engagement - счетчики вовлеченности, которые отдает бэкенд.
// Только для чтения, существуют лишь у remote-записей.
type Engagement struct {
	Views      int `json:"views"`
	Inquiries  int `json:"inquiries"`
	Bookmarked int `json:"bookmarked"`
}

// Listing - единая сущность объявления независимо от происхождения.
// Эта же структура сериализуется в payload черновиков draft store,
// поэтому json-теги описывают формат хранения.
//
// Прогресс заполнения (процент, текущий шаг) сюда НЕ входит: он всегда
// вычисляется на чтении через DeriveProgress и никогда не персистится.
type Listing struct {
	ID      string   `json:"id"`
	OwnerID string   `json:"owner_id"`
	Origin  Origin   `json:"origin"`
	Category Category `json:"category"`
	Status  Status   `json:"status"`

	Name         string `json:"name"`
	PropertyType string `json:"property_type"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Description  string `json:"description"`

	Value        float64 `json:"value"`
	ROIPercent   float64 `json:"roi_percent"`
	YieldPercent float64 `json:"yield_percent"`

	Media       *Media       `json:"media,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Geohash     string       `json:"geohash,omitempty"`
	Features    *Features    `json:"features,omitempty"`
	Engagement  *Engagement  `json:"engagement,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location - место объявления одной строкой, используется предикатом первого шага.
func (l Listing) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.City, l.Region} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// NewDraftListing создает пустой локальный черновик: шаг 0, статус Draft.
func NewDraftListing(ownerID string, category Category, now time.Time) Listing {
	return Listing{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Origin:    OriginLocal,
		Category:  category,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RemoteListingID строит клиентский id из числового id бэкенда.
// Бэкенд этот производный id никогда не видит.
func RemoteListingID(backendID int64) string {
	return fmt.Sprintf("%s%d", remoteIDPrefix, backendID)
}

// BackendID извлекает числовой id бэкенда из производного id.
// Второе значение false означает, что id не относится к remote-пространству.
func BackendID(id string) (int64, bool) {
	raw, found := strings.CutPrefix(id, remoteIDPrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsRemoteID сообщает, принадлежит ли id remote-пространству.
// Используется только при разборе входящих параметров маршрута;
// внутри системы происхождение хранится явным полем Origin.
func IsRemoteID(id string) bool {
	_, ok := BackendID(id)
	return ok
}
