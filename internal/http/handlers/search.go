package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
	"github.com/segmento-labs/pulse-web/internal/models"
)

// Search — legacy v1 поиск. Пустой q — 400; сбой бэкенда — пустая выдача.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	articles := h.News.Search(r.Context(), query)
	if articles == nil {
		articles = []models.Article{}
	}

	writeJSON(w, http.StatusOK, models.ArticlesResponse{Articles: articles})
}

// SearchV2 — ранжированный поиск. Выдача отдаётся в порядке бэкенда.
//
// Валидация: q обязателен; decay_factor (если задан) ∈ [0,1]; limit и
// max_hours (если заданы) — положительные числа.
func (h *Handlers) SearchV2(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	opts := models.SearchV2Options{
		Category:      q.Get("category"),
		CloudProvider: q.Get("cloud_provider"),
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
			return
		}
		opts.Limit = n
	}

	if v := q.Get("max_hours"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
			return
		}
		opts.MaxHours = f
	}

	if v := q.Get("decay_factor"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
			return
		}
		opts.DecayFactor = &f
	}

	writeJSON(w, http.StatusOK, h.News.SearchV2(r.Context(), query, opts))
}
