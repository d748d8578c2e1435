package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/segmento-labs/pulse-web/internal/category"
	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
)

// categoryPill — соседняя категория с производными признаками для отрисовки.
type categoryPill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCloud  bool   `json:"is_cloud_provider"`
	Provider string `json:"provider,omitempty"`
}

type categoriesResponse struct {
	Group      string         `json:"group,omitempty"`
	Categories []categoryPill `json:"categories"`
}

// Categories — соседние категории (пилюли навигации) для запрошенного id.
// Никогда не отвечает пустым списком: неизвестный id деградирует до
// одиночной категории.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	siblings := category.Resolve(id)

	pills := make([]categoryPill, 0, len(siblings))
	for _, s := range siblings {
		pill := categoryPill{ID: s.ID, Name: s.Name}
		if category.IsCloudProvider(s.ID) {
			pill.IsCloud = true
			pill.Provider = category.ProviderName(s.ID)
		}
		pills = append(pills, pill)
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Group:      category.Group(id),
		Categories: pills,
	})
}
