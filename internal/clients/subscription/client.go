// subscription — чтение записей подписчиков рассылки из realtime-базы (REST).
//
// Ключ записи — SHA-256 нормализованного email, усечённый до 16 hex-символов
// (та же схема, что у бэкенда рассылки). Записи создаются внешним флоу
// подписки; отсюда — только чтение.
package subscription

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/segmento-labs/pulse-web/pkg/log"
)

// keyLen — длина усечения hex-хэша email.
const keyLen = 16

// Client — клиент realtime-базы подписчиков.
type Client struct {
	baseURL string
	http    *http.Client
}

// New создаёт клиент. client == nil — дефолтный с таймаутом 10s.
func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{baseURL: baseURL, http: client}
}

// SubscriberKey — ключ записи подписчика: trim+lower email, SHA-256, hex,
// первые 16 символов.
func SubscriberKey(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:keyLen]
}

// Fetch возвращает запись подписчика по email.
// Отсутствие записи (тело "null"), сбой транспорта или битое тело —
// (nil, false), без ошибки наружу.
func (c *Client) Fetch(ctx context.Context, email string) (*models.UserSubscription, bool) {
	const op = "subscription.Fetch"

	if strings.TrimSpace(email) == "" {
		return nil, false
	}

	lg := log.From(ctx)

	endpoint := fmt.Sprintf("%s/pulse/subscribers/%s.json", c.baseURL, SubscriberKey(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		lg.Warn("request_build_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lg.Warn("http_status_error", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return nil, false
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		lg.Warn("read_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil, false
	}

	// Realtime-база отвечает телом "null" на отсутствующий ключ.
	if strings.TrimSpace(string(raw)) == "null" {
		return nil, false
	}

	var sub models.UserSubscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		lg.Warn("decode_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil, false
	}

	return &sub, true
}
