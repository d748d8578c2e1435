// errors стандартизирует ответы об ошибках HTTP-слоя pulse-web.
//
// Важно: сбои апстрим-бэкендов сюда не попадают — они полностью гасятся
// на границе клиентских обёрток (пустой результат для чтений, тихий no-op
// для записей). Здесь остаются только локальные ошибки самого слоя:
// битые входные параметры, отсутствующая сессия, паника.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrInvalidArgument — некорректные входные параметры запроса. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — запрошенная сущность отсутствует (чат-сессия). HTTP 404.
	ErrNotFound = errors.New("not found")
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует локальную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не
//     послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, envelope("invalid_argument", "invalid argument")
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, envelope("not_found", "not found")
	default:
		return http.StatusInternalServerError, envelope("internal", "internal error")
	}
}

func envelope(code, msg string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
