package handlers

import (
	"net/http"
	"strings"

	apierrors "github.com/segmento-labs/pulse-web/internal/errors"
	"github.com/segmento-labs/pulse-web/internal/newsletter"
)

type editionsResponse struct {
	Editions []newsletter.EditionInfo `json:"editions"`
}

// NewsletterEditions — каталог выпусков рассылки.
func (h *Handlers) NewsletterEditions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, editionsResponse{Editions: newsletter.All()})
}

type subscriberResponse struct {
	Found      bool `json:"found"`
	Subscriber any  `json:"subscriber,omitempty"`
}

// Subscriber — запись подписчика по email. Отсутствие записи и сбой базы
// неразличимы: found=false, 200.
func (h *Handlers) Subscriber(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	sub, ok := h.Subscribers.Fetch(r.Context(), email)
	if !ok {
		writeJSON(w, http.StatusOK, subscriberResponse{Found: false})
		return
	}

	writeJSON(w, http.StatusOK, subscriberResponse{Found: true, Subscriber: sub})
}
