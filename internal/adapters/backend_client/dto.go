package backend_api_client

// DTO для ответа бэкенда объявлений.
// Имена полей - это схема бэкенда, она отличается от нашей доменной модели
// (title вместо name, listed_date вместо created_at и т.д.).
type vendorPropertyResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	PropertyType string   `json:"property_type"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Region       string   `json:"region"`
	Description  string   `json:"description"`
	Value        float64  `json:"value"`
	ROIPercent   float64  `json:"roi_percent"`
	YieldPercent float64  `json:"yield_percent"`
	Thumbnail    string   `json:"thumbnail"`
	Images       []string `json:"images"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	Features *vendorPropertyFeatures `json:"features"`

	// Счетчики вовлеченности, только для чтения.
	Views      int `json:"views"`
	Inquiries  int `json:"inquiries"`
	Bookmarked int `json:"bookmarked"`

	ListedDate  string `json:"listed_date"`
	UpdatedDate string `json:"updated_date"`
}

type vendorPropertyFeatures struct {
	Electricity bool `json:"electricity"`
	Water       bool `json:"water"`
	Parking     bool `json:"parking"`
	Furnished   bool `json:"furnished"`
	Security    bool `json:"security"`

	RoadQuality       string `json:"road_quality"`
	SchoolProximity   string `json:"school_proximity"`
	HospitalProximity string `json:"hospital_proximity"`
}

type vendorPropertiesResponse struct {
	Data []vendorPropertyResponse `json:"data"`
}

type deletePropertyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
