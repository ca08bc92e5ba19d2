package backend_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
)

// BackendAPIClient - клиент бэкенда объявлений.
// Реализует BackendListingsPort: авторизованный GET списка объявлений
// вендора и авторизованный DELETE по числовому id.
type BackendAPIClient struct {
	baseURL    string // Например, "http://backend-api:8080"
	authToken  string
	httpClient *http.Client
}

// NewBackendAPIClient - конструктор.
// requestTimeout ограничивает каждый запрос: зависший фетч не должен
// держать вызывающего бесконечно.
func NewBackendAPIClient(baseURL, authToken string, requestTimeout time.Duration) *BackendAPIClient {
	if requestTimeout <= 0 {
		requestTimeout = 15 * time.Second
	}
	return &BackendAPIClient{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *BackendAPIClient) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchByOwner реализует порт BackendListingsPort.
// Повторов нет: ошибка фетча отдается вызывающему, решение о деградации
// принимает агрегирующий use case.
func (c *BackendAPIClient) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendAPIClient",
		"method":    "FetchByOwner",
		"owner_id":  ownerID,
	})

	url := fmt.Sprintf("%s/api/v1/vendors/%s/properties", c.baseURL, ownerID)
	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to backend", err, port.Fields{"url": url})
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("backend returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var apiResponse vendorPropertiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		clientLogger.Error("Failed to decode backend response", err, nil)
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	// Маппим DTO ответа в доменную модель: это изолирует ядро от схемы
	// чужого API и навешивает remote-происхождение.
	result := make([]domain.Listing, len(apiResponse.Data))
	for i, dto := range apiResponse.Data {
		result[i] = toDomainListing(dto, ownerID)
	}

	clientLogger.Info("Successfully fetched vendor properties from backend", port.Fields{
		"listings_found": len(result),
	})
	return result, nil
}

// Delete реализует порт BackendListingsPort.
func (c *BackendAPIClient) Delete(ctx context.Context, backendID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":  "BackendAPIClient",
		"method":     "Delete",
		"backend_id": backendID,
	})

	url := fmt.Sprintf("%s/api/v1/properties/%d", c.baseURL, backendID)
	resp, err := c.doRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform delete request to backend", err, port.Fields{"url": url})
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("backend delete returned status %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from backend on delete", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	// Тело ответа {"success": ...} опционально: 2xx уже означает успех,
	// но явный success=false с текстом ошибки уважаем.
	var deleteResp deletePropertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&deleteResp); err == nil {
		if !deleteResp.Success && deleteResp.Error != "" {
			err := fmt.Errorf("backend reported delete failure: %s", deleteResp.Error)
			clientLogger.Error("Backend reported delete failure", err, nil)
			return err
		}
	}

	clientLogger.Info("Successfully deleted property at backend", nil)
	return nil
}
