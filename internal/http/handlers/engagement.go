package handlers

import (
	"net/http"
	"strings"

	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
	"github.com/segmento-labs/pulse-web/internal/models"
)

// ArticleStats — счётчики статьи по URL. Сбой бэкенда -> нулевые счётчики.
func (h *Handlers) ArticleStats(w http.ResponseWriter, r *http.Request) {
	articleURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if articleURL == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	writeJSON(w, http.StatusOK, h.Engagement.Stats(r.Context(), articleURL))
}

type viewRequest struct {
	URL string `json:"url"`
}

type viewResponse struct {
	Views int64 `json:"views"`
}

// ArticleView — инкремент счётчика просмотров. Сбой мутации не виден
// клиенту (оптимистичный счётчик в UI — единственная обратная связь).
func (h *Handlers) ArticleView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := decodeStrict(r, &req); err != nil || strings.TrimSpace(req.URL) == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	views := h.Engagement.IncrementView(r.Context(), req.URL)
	writeJSON(w, http.StatusOK, viewResponse{Views: views})
}

// reactionRequest — установка/снятие лайка или дизлайка.
// Previous — предыдущая реакция пользователя на статью ("", "like",
// "dislike"), по данным фронта: сервер пользовательского состояния не хранит.
type reactionRequest struct {
	URL      string `json:"url"`
	Active   bool   `json:"active"`
	Previous string `json:"previous,omitempty"`
}

type reactionResponse struct {
	OK bool `json:"ok"`
}

// ArticleLike — лайк статьи с правилом взаимного исключения: активация
// лайка при предыдущем дизлайке сначала снимает дизлайк (clear-then-set),
// бэкенд пары не связывает.
func (h *Handlers) ArticleLike(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReaction(w, r)
	if !ok {
		return
	}

	if req.Active && req.Previous == "dislike" {
		h.Engagement.SetDislike(r.Context(), req.URL, false)
	}
	h.Engagement.SetLike(r.Context(), req.URL, req.Active)

	writeJSON(w, http.StatusOK, reactionResponse{OK: true})
}

// ArticleDislike — симметрично ArticleLike.
func (h *Handlers) ArticleDislike(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReaction(w, r)
	if !ok {
		return
	}

	if req.Active && req.Previous == "like" {
		h.Engagement.SetLike(r.Context(), req.URL, false)
	}
	h.Engagement.SetDislike(r.Context(), req.URL, req.Active)

	writeJSON(w, http.StatusOK, reactionResponse{OK: true})
}

func (h *Handlers) decodeReaction(w http.ResponseWriter, r *http.Request) (reactionRequest, bool) {
	var req reactionRequest
	if err := decodeStrict(r, &req); err != nil || strings.TrimSpace(req.URL) == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return reactionRequest{}, false
	}

	switch req.Previous {
	case "", "like", "dislike":
	default:
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return reactionRequest{}, false
	}

	return req, true
}

type trendingResponse struct {
	Articles []models.TrendingArticle `json:"articles"`
}

// Trending — трендовые статьи. Сбой -> пустой список, 200.
func (h *Handlers) Trending(w http.ResponseWriter, r *http.Request) {
	hours, ok := queryInt(r, "hours", 24)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	limit, ok := queryInt(r, "limit", 10)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	articles := h.Engagement.Trending(r.Context(), hours, limit)
	if articles == nil {
		articles = []models.TrendingArticle{}
	}

	writeJSON(w, http.StatusOK, trendingResponse{Articles: articles})
}
