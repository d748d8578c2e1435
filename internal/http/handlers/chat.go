package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
	"github.com/segmento-labs/pulse-web/internal/models"
)

type chatSessionResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []models.ChatMessage `json:"messages"`
	Typing    bool                 `json:"typing"`
}

// ChatCreateSession — новая чат-сессия.
func (h *Handlers) ChatCreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.Chat.Create()

	msgs, typing := s.Snapshot()
	writeJSON(w, http.StatusCreated, chatSessionResponse{
		SessionID: s.ID,
		Messages:  msgs,
		Typing:    typing,
	})
}

// ChatGetSession — текущее состояние сессии (история + индикатор набора).
func (h *Handlers) ChatGetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Chat.Get(chi.URLParam(r, "id"))
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrNotFound)
		return
	}

	msgs, typing := s.Snapshot()
	writeJSON(w, http.StatusOK, chatSessionResponse{
		SessionID: s.ID,
		Messages:  msgs,
		Typing:    typing,
	})
}

type chatMessageRequest struct {
	Text string `json:"text"`
}

// ChatSendMessage — сообщение пользователя в сессию.
// Пустой (после trim) текст — no-op: история не меняется, ответ не
// планируется; отдаём текущее состояние с 200, как и виджет.
func (h *Handlers) ChatSendMessage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Chat.Get(chi.URLParam(r, "id"))
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrNotFound)
		return
	}

	var req chatMessageRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	s.Send(req.Text)

	msgs, typing := s.Snapshot()
	writeJSON(w, http.StatusOK, chatSessionResponse{
		SessionID: s.ID,
		Messages:  msgs,
		Typing:    typing,
	})
}
