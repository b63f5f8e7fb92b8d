package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/apiversion/version"
)

// Тип для ключа контекста.
type contextKey string

// Ключ для хранения разрешенной версии API в контексте.
const VersionKey contextKey = "apiVersion"

// Источники запрошенной версии в HTTP-запросе.
const (
	// URL-параметр chi-роутера, например /api/{version}/users.
	urlParamVersion = "version"
	// Query-параметр, например ?version=20130101.
	queryParamVersion = "version"
	// Заголовок с запрошенной версией.
	headerVersion = "X-Api-Version"
)

// VersionResolver возвращает middleware, которое извлекает запрошенную версию
// API из запроса, разрешает ее по списку известных версий и кладет результат
// в контекст запроса.
//
// Источники проверяются по приоритету: URL-параметр {version}, query-параметр
// version, заголовок X-Api-Version. Если версия нигде не указана, выбирается
// самая свежая известная версия. Выбор кода рендеринга по разрешенной версии
// остается за обработчиком.
func VersionResolver(known version.List) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested, err := requestedVersion(r)
			if err != nil {
				log.Printf("[VersionMiddleware] Некорректная запрошенная версия: %v", err)
				http.Error(w, "Некорректная версия API", http.StatusBadRequest)
				return
			}

			resolved, err := known.Resolve(requested)
			if err != nil {
				// Единственная ошибка Resolve — пустой список известных версий,
				// то есть ошибка конфигурации сервера, а не клиента.
				log.Printf("[VersionMiddleware] Ошибка разрешения версии: %v", err)
				http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			}

			if requested != nil {
				log.Printf("[VersionMiddleware] Запрошена версия %s, выбрана %s", requested, resolved)
			} else {
				log.Printf("[VersionMiddleware] Версия не запрошена, выбрана последняя: %s", resolved)
			}

			// Добавляем разрешенную версию в контекст запроса
			ctx := context.WithValue(r.Context(), VersionKey, resolved)

			// Передаем управление следующему обработчику с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestedVersion извлекает запрошенную версию из запроса.
// Возвращает nil, если версия не указана ни в одном из источников.
func requestedVersion(r *http.Request) (*version.Token, error) {
	raw := chi.URLParam(r, urlParamVersion)
	if raw == "" {
		raw = r.URL.Query().Get(queryParamVersion)
	}
	if raw == "" {
		raw = r.Header.Get(headerVersion)
	}
	if raw == "" {
		return nil, nil
	}

	token, err := version.ParseToken(raw)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// GetVersionFromContext извлекает разрешенную версию API из контекста запроса.
// Возвращает токен и true, если версия найдена, иначе 0 и false.
func GetVersionFromContext(ctx context.Context) (version.Token, bool) {
	token, ok := ctx.Value(VersionKey).(version.Token)
	return token, ok
}
