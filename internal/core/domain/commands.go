package domain

// Команды редакторов шагов. Каждый редактор привязан ровно к одному
// подмножеству полей объявления и не трогает остальные.

// BasicInfoUpdate - поля первого шага (базовая информация).
type BasicInfoUpdate struct {
	Name         string
	PropertyType string
	Address      string
	City         string
	Region       string
	Description  string
	Value        float64
	ROIPercent   float64
	YieldPercent float64
}

// ImagesUpdate - поля второго шага (медиа).
type ImagesUpdate struct {
	Thumbnail string
	Images    []string
}

// CoordinatesUpdate - поля третьего шага. Обе координаты обязательны вместе.
type CoordinatesUpdate struct {
	Latitude  float64
	Longitude float64
}
