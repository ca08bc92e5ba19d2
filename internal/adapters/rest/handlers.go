package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
	"listing-lifecycle-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// ListingsHandler - обработчики всех операций над объявлениями.
type ListingsHandler struct {
	aggregateUC   usecases_port.AggregateListingsUseCasePort
	createUC      usecases_port.CreateListingUseCasePort
	getUC         usecases_port.GetListingUseCasePort
	basicInfoUC   usecases_port.UpdateBasicInfoUseCasePort
	imagesUC      usecases_port.UpdateImagesUseCasePort
	coordinatesUC usecases_port.UpdateCoordinatesUseCasePort
	featuresUC    usecases_port.UpdateFeaturesUseCasePort
	publishUC     usecases_port.PublishListingUseCasePort
	removeUC      usecases_port.RemoveListingUseCasePort
}

// NewListingsHandler - конструктор.
func NewListingsHandler(
	aggregateUC usecases_port.AggregateListingsUseCasePort,
	createUC usecases_port.CreateListingUseCasePort,
	getUC usecases_port.GetListingUseCasePort,
	basicInfoUC usecases_port.UpdateBasicInfoUseCasePort,
	imagesUC usecases_port.UpdateImagesUseCasePort,
	coordinatesUC usecases_port.UpdateCoordinatesUseCasePort,
	featuresUC usecases_port.UpdateFeaturesUseCasePort,
	publishUC usecases_port.PublishListingUseCasePort,
	removeUC usecases_port.RemoveListingUseCasePort,
) *ListingsHandler {
	return &ListingsHandler{
		aggregateUC:   aggregateUC,
		createUC:      createUC,
		getUC:         getUC,
		basicInfoUC:   basicInfoUC,
		imagesUC:      imagesUC,
		coordinatesUC: coordinatesUC,
		featuresUC:    featuresUC,
		publishUC:     publishUC,
		removeUC:      removeUC,
	}
}

// ownerIDFromContext достает идентификатор вендора, положенный AuthMiddleware.
func ownerIDFromContext(r *http.Request) (string, bool) {
	ownerID, ok := r.Context().Value(ownerIDKey).(string)
	return ownerID, ok && ownerID != ""
}

// writeDomainError маппит доменные ошибки на HTTP-статусы.
// Все, что не распознано, считается внутренней ошибкой.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteJSONError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrListingNotFound):
		WriteJSONError(w, http.StatusNotFound, "Listing not found")
	case errors.Is(err, domain.ErrRemoteListingImmutable):
		WriteJSONError(w, http.StatusConflict, "Published backend listings cannot be edited locally")
	case errors.Is(err, domain.ErrConfirmationRequired):
		WriteJSONError(w, http.StatusBadRequest, "Removal confirmation token is missing or invalid")
	case errors.Is(err, domain.ErrBackendUnavailable):
		WriteJSONError(w, http.StatusBadGateway, "Backend listings service is unavailable")
	default:
		WriteJSONError(w, http.StatusInternalServerError, fallback)
	}
}

// GetListings обрабатывает GET /api/v1/listings
func (h *ListingsHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListings"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	filters := domain.FilterSpec{
		Category: domain.Category(r.URL.Query().Get("category")),
		Status:   domain.Status(r.URL.Query().Get("status")),
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id": ownerID,
		"category": filters.Category,
		"status":   filters.Status,
	})
	handlerLogger.Info("Processing request to get aggregated listings", nil)

	result, err := h.aggregateUC.Execute(r.Context(), ownerID, filters)
	if err != nil {
		handlerLogger.Error("Aggregate listings use case failed", err, nil)
		writeDomainError(w, err, "Failed to retrieve listings")
		return
	}

	response := AggregatedListResponse{
		Data:            make([]ListingResponse, len(result.Listings)),
		Total:           len(result.Listings),
		RemoteAvailable: result.RemoteAvailable,
	}
	for i, al := range result.Listings {
		response.Data[i] = toListingResponse(al)
	}

	handlerLogger.Info("Successfully retrieved aggregated listings", port.Fields{
		"total":            response.Total,
		"remote_available": response.RemoteAvailable,
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	var reqDTO CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create listing", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id": ownerID,
		"category": reqDTO.Category,
	})
	handlerLogger.Info("Processing request to create draft listing", nil)

	listing, err := h.createUC.Execute(r.Context(), ownerID, domain.Category(reqDTO.Category))
	if err != nil {
		handlerLogger.Error("Create listing use case failed", err, nil)
		writeDomainError(w, err, "Failed to create listing")
		return
	}

	handlerLogger.Info("Successfully created draft listing", port.Fields{"listing_id": listing.ID})
	RespondWithJSON(w, http.StatusCreated, toListingResponse(domain.AggregatedListing{
		Listing:  *listing,
		Progress: domain.DeriveProgress(*listing),
	}))
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListing"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to get listing", nil)

	result, err := h.getUC.Execute(r.Context(), ownerID, listingID)
	if err != nil {
		handlerLogger.Error("Get listing use case failed", err, nil)
		writeDomainError(w, err, "Failed to retrieve listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// UpdateBasicInfo обрабатывает PUT /api/v1/listings/{listingID}/basic-info
func (h *ListingsHandler) UpdateBasicInfo(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateBasicInfo"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	var reqDTO BasicInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for basic info", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to update basic info", nil)

	result, err := h.basicInfoUC.Execute(r.Context(), ownerID, listingID, domain.BasicInfoUpdate{
		Name:         reqDTO.Name,
		PropertyType: reqDTO.PropertyType,
		Address:      reqDTO.Address,
		City:         reqDTO.City,
		Region:       reqDTO.Region,
		Description:  reqDTO.Description,
		Value:        reqDTO.Value,
		ROIPercent:   reqDTO.ROIPercent,
		YieldPercent: reqDTO.YieldPercent,
	})
	if err != nil {
		handlerLogger.Error("Update basic info use case failed", err, nil)
		writeDomainError(w, err, "Failed to update basic info")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// UpdateImages обрабатывает PUT /api/v1/listings/{listingID}/images
func (h *ListingsHandler) UpdateImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateImages"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	var reqDTO ImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for images", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to update images", nil)

	result, err := h.imagesUC.Execute(r.Context(), ownerID, listingID, domain.ImagesUpdate{
		Thumbnail: reqDTO.Thumbnail,
		Images:    reqDTO.Images,
	})
	if err != nil {
		handlerLogger.Error("Update images use case failed", err, nil)
		writeDomainError(w, err, "Failed to update images")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// UpdateCoordinates обрабатывает PUT /api/v1/listings/{listingID}/coordinates
func (h *ListingsHandler) UpdateCoordinates(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateCoordinates"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	var reqDTO CoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for coordinates", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to update coordinates", nil)

	result, err := h.coordinatesUC.Execute(r.Context(), ownerID, listingID, domain.CoordinatesUpdate{
		Latitude:  reqDTO.Latitude,
		Longitude: reqDTO.Longitude,
	})
	if err != nil {
		handlerLogger.Error("Update coordinates use case failed", err, nil)
		writeDomainError(w, err, "Failed to update coordinates")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// UpdateFeatures обрабатывает PUT /api/v1/listings/{listingID}/features
func (h *ListingsHandler) UpdateFeatures(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateFeatures"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	var reqDTO FeaturesRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for features", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to update features", nil)

	result, err := h.featuresUC.Execute(r.Context(), ownerID, listingID, domain.Features{
		Electricity:       reqDTO.Electricity,
		Water:             reqDTO.Water,
		Parking:           reqDTO.Parking,
		Furnished:         reqDTO.Furnished,
		Security:          reqDTO.Security,
		RoadQuality:       reqDTO.RoadQuality,
		SchoolProximity:   reqDTO.SchoolProximity,
		HospitalProximity: reqDTO.HospitalProximity,
	})
	if err != nil {
		handlerLogger.Error("Update features use case failed", err, nil)
		writeDomainError(w, err, "Failed to update features")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// PublishListing обрабатывает POST /api/v1/listings/{listingID}/publish
func (h *ListingsHandler) PublishListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "PublishListing"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to publish listing", nil)

	result, err := h.publishUC.Execute(r.Context(), ownerID, listingID)
	if err != nil {
		handlerLogger.Error("Publish listing use case failed", err, nil)
		writeDomainError(w, err, "Failed to publish listing")
		return
	}

	handlerLogger.Info("Successfully published listing", nil)
	RespondWithJSON(w, http.StatusOK, toListingResponse(*result))
}

// RemoveListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingsHandler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveListing"})

	ownerID, ok := ownerIDFromContext(r)
	if !ok {
		logger.Error("Invalid or missing owner ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid owner ID in context")
		return
	}

	listingID := chi.URLParam(r, "listingID")

	// Тело опционально: для remote-записей подтверждение не требуется.
	var reqDTO RemoveListingRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&reqDTO)
	}

	handlerLogger := logger.WithFields(port.Fields{
		"owner_id":   ownerID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to remove listing", nil)

	if err := h.removeUC.Execute(r.Context(), ownerID, listingID, reqDTO.Confirmation); err != nil {
		handlerLogger.Error("Remove listing use case failed", err, nil)
		writeDomainError(w, err, "Failed to remove listing")
		return
	}

	handlerLogger.Info("Successfully removed listing", nil)
	w.WriteHeader(http.StatusNoContent)
}
