package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const ownerIDKey = contextKey("ownerID")

// AuthMiddleware - middleware для извлечения идентификатора вендора из заголовка.
// Аутентификацию выполняет API Gateway, сюда приходит уже проверенный X-User-ID.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerIDStr := r.Header.Get("X-User-ID")
		if ownerIDStr == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-User-ID header is missing")
			return
		}

		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-ID header format")
			return
		}

		// Добавляем ownerID в контекст запроса
		ctx := context.WithValue(r.Context(), ownerIDKey, ownerID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
