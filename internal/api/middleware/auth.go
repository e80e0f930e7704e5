package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

type contextKey string

// SessionIDKey ключ контекста с идентификатором сессии голосового бота
const SessionIDKey contextKey = "sessionID"

// Auth проверяет наличие заголовка X-Session-ID.
// Записи создает и меняет голосовой бот от имени конкретного звонка;
// запрос без идентификатора сессии не обслуживается.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			handlers.RespondUnauthorized(w, "заголовок X-Session-ID обязателен")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID достает идентификатор сессии из контекста
func SessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionIDKey).(string)
	return sessionID
}
