package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
	"github.com/segmento-labs/pulse-web/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// NewsByCategory — браузинг статей категории.
// Сбой бэкенда неотличим от пустой категории: фронт всегда получает 200
// и массив статей (возможно пустой).
func (h *Handlers) NewsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	page, ok := queryInt(r, "page", defaultPage)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	limit, ok := queryInt(r, "limit", defaultLimit)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	articles := h.News.FetchByCategory(r.Context(), category, page, limit)
	if articles == nil {
		articles = []models.Article{}
	}

	writeJSON(w, http.StatusOK, models.ArticlesResponse{Articles: articles})
}

// queryInt читает целочисленный query-параметр с дефолтом; false — битое значение.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
