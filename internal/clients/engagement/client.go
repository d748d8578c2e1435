// engagement — клиент бэкенда счётчиков вовлечённости (просмотры/лайки/
// дизлайки по статьям).
//
// Чтения идут через короткоживущий TTL-кэш (ограничивает нагрузку на
// бэкенд); сбои чтения схлопываются в нулевые счётчики, сбои мутаций
// глотаются с записью в лог — оптимистичный счётчик в UI остаётся
// единственной обратной связью пользователю (принятое поведение).
package engagement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/segmento-labs/pulse-web/internal/cache"
	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/segmento-labs/pulse-web/pkg/log"
)

// Client — обёртка над engagement-бэкендом. Кэш принадлежит клиенту и
// живёт вместе с ним.
type Client struct {
	baseURL      string
	http         *http.Client
	cache        cache.StatsCache
	ttl          time.Duration
	pollInterval time.Duration

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

// inflightCall — сведение конкурентных чтений одного id к одному сетевому
// вызову в пределах TTL-окна.
type inflightCall struct {
	done  chan struct{}
	stats models.ArticleStats
}

// Options — параметры клиента.
type Options struct {
	BaseURL      string
	HTTPClient   *http.Client
	Cache        cache.StatsCache
	CacheTTL     time.Duration
	PollInterval time.Duration
}

// New создаёт клиент. Незаданные опции получают дефолты: HTTP-таймаут 8s,
// in-memory кэш, TTL 5s, интервал опроса 30s.
func New(opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 8 * time.Second}
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewMemory(0)
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Second
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 30 * time.Second
	}

	return &Client{
		baseURL:      opts.BaseURL,
		http:         opts.HTTPClient,
		cache:        opts.Cache,
		ttl:          opts.CacheTTL,
		pollInterval: opts.PollInterval,
		inflight:     make(map[string]*inflightCall),
	}
}

// Close освобождает кэш клиента.
func (c *Client) Close() error { return c.cache.Close() }

// Stats возвращает счётчики статьи по её URL.
//
// Порядок: кэш -> (single-flight) сеть -> кэш. Конкурентные запросы одного
// id в пределах TTL видят одно и то же значение и дают не более одного
// сетевого вызова. Любой сбой -> нулевые счётчики, без ошибки.
func (c *Client) Stats(ctx context.Context, articleURL string) models.ArticleStats {
	id := ArticleID(articleURL)

	if stats, ok, err := c.cache.Get(ctx, id); err == nil && ok {
		return stats
	}

	c.mu.Lock()
	if call, ok := c.inflight[id]; ok {
		c.mu.Unlock()

		select {
		case <-call.done:
			return call.stats
		case <-ctx.Done():
			return models.ArticleStats{}
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	c.inflight[id] = call
	c.mu.Unlock()

	stats, ok := c.fetchStats(ctx, id)
	if ok {
		// Ошибку записи в кэш не эскалируем: кэш — оптимизация.
		_ = c.cache.Set(ctx, id, stats, c.ttl)
	}

	call.stats = stats

	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()

	close(call.done)

	return stats
}

func (c *Client) fetchStats(ctx context.Context, id string) (models.ArticleStats, bool) {
	const op = "engagement.fetchStats"

	lg := log.From(ctx)

	endpoint := fmt.Sprintf("%s/api/engagement/articles/%s/stats", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		lg.Warn("request_build_error", slog.String("op", op), slog.String("err", err.Error()))
		return models.ArticleStats{}, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error", slog.String("op", op), slog.String("err", err.Error()))
		return models.ArticleStats{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lg.Warn("http_status_error", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return models.ArticleStats{}, false
	}

	var stats models.ArticleStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		lg.Warn("decode_error", slog.String("op", op), slog.String("err", err.Error()))
		return models.ArticleStats{}, false
	}

	return stats, true
}

// IncrementView инкрементирует счётчик просмотров. Возвращает новое значение
// (0 — при сбое); сбой глотается. На успех инвалидирует кэш статьи.
func (c *Client) IncrementView(ctx context.Context, articleURL string) int64 {
	const op = "engagement.IncrementView"

	id := ArticleID(articleURL)

	var resp struct {
		Views int64 `json:"views"`
	}

	if !c.postMutation(ctx, op, id, "view", nil, &resp) {
		return 0
	}

	_ = c.cache.Invalidate(ctx, id)

	if resp.Views == 0 {
		return 1
	}
	return resp.Views
}

// SetLike выставляет/снимает лайк. Сбой глотается (лог), на успех кэш
// статьи инвалидируется.
//
// Взаимное исключение лайка и дизлайка обеспечивает вызывающий: перед
// установкой одного состояния снимает другое (clear-then-set), бэкенд
// этого не делает.
func (c *Client) SetLike(ctx context.Context, articleURL string, active bool) {
	const op = "engagement.SetLike"
	c.setReaction(ctx, op, articleURL, "like", active)
}

// SetDislike — симметрично SetLike для дизлайка.
func (c *Client) SetDislike(ctx context.Context, articleURL string, active bool) {
	const op = "engagement.SetDislike"
	c.setReaction(ctx, op, articleURL, "dislike", active)
}

func (c *Client) setReaction(ctx context.Context, op, articleURL, action string, active bool) {
	id := ArticleID(articleURL)

	body := map[string]bool{"active": active}

	if !c.postMutation(ctx, op, id, action, body, nil) {
		return
	}

	_ = c.cache.Invalidate(ctx, id)
}

// postMutation выполняет POST-мутацию; false — сбой (уже залогирован).
func (c *Client) postMutation(ctx context.Context, op, id, action string, body any, out any) bool {
	lg := log.From(ctx)

	endpoint := fmt.Sprintf("%s/api/engagement/articles/%s/%s", c.baseURL, id, action)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			lg.Warn("marshal_error", slog.String("op", op), slog.String("err", err.Error()))
			return false
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		lg.Warn("request_build_error", slog.String("op", op), slog.String("err", err.Error()))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error", slog.String("op", op), slog.String("err", err.Error()))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lg.Warn("http_status_error", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return false
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			lg.Warn("decode_error", slog.String("op", op), slog.String("err", err.Error()))
			return false
		}
	}

	return true
}

// SubscribeStats запускает опрос статистики статьи: немедленное чтение и
// далее раз в pollInterval. Push-канала у бэкенда нет, «подписка» — это
// отменяемый таймер.
//
// Возвращённую функцию обязан вызвать владелец при teardown — она
// детерминированно гасит тикер. Опрос также останавливается по ctx.
func (c *Client) SubscribeStats(ctx context.Context, articleURL string, onUpdate func(models.ArticleStats)) func() {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		onUpdate(c.Stats(ctx, articleURL))

		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				onUpdate(c.Stats(ctx, articleURL))
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}

// Trending возвращает трендовые статьи за окно hours. Сбой -> пустой срез.
func (c *Client) Trending(ctx context.Context, hours, limit int) []models.TrendingArticle {
	const op = "engagement.Trending"

	lg := log.From(ctx)

	endpoint := fmt.Sprintf("%s/api/engagement/articles/trending?hours=%d&limit=%d", c.baseURL, hours, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		lg.Warn("request_build_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lg.Warn("http_status_error", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return nil
	}

	var payload struct {
		Articles []models.TrendingArticle `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		lg.Warn("decode_error", slog.String("op", op), slog.String("err", err.Error()))
		return nil
	}

	return payload.Articles
}
