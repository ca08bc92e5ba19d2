package domain

// FilterSpec - фильтры агрегированного списка. Пустое значение поля
// означает "Все" (фильтр не применяется).
type FilterSpec struct {
	Category Category
	Status   Status
}

// Matches - чистый предикат. Предикаты по категории и статусу независимы,
// поэтому порядок их применения не влияет на результат.
func (f FilterSpec) Matches(l Listing) bool {
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	return true
}

// AggregationResult - результат слияния двух коллекций.
// RemoteAvailable позволяет отличить пустой аккаунт от недоступного бэкенда:
// при ошибке фетча черновики все равно отдаются, но флаг сбрасывается.
type AggregationResult struct {
	Listings        []AggregatedListing
	RemoteAvailable bool
}
