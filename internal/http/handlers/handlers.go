package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/segmento-labs/pulse-web/internal/chatbot"
	"github.com/segmento-labs/pulse-web/internal/clients/engagement"
	"github.com/segmento-labs/pulse-web/internal/clients/newsapi"
	"github.com/segmento-labs/pulse-web/internal/clients/subscription"
)

// Handlers агрегирует зависимости (клиенты бэкендов и чат).
type Handlers struct {
	News        *newsapi.Client
	Engagement  *engagement.Client
	Subscribers *subscription.Client
	Chat        *chatbot.Store
}

func New(news *newsapi.Client, eng *engagement.Client, subs *subscription.Client, chat *chatbot.Store) *Handlers {
	return &Handlers{
		News:        news,
		Engagement:  eng,
		Subscribers: subs,
		Chat:        chat,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
