// newsapi — клиент бэкенда новостей и поиска Pulse (HTTP/JSON).
//
// Политика ошибок — «пустой результат вместо исключения»: любой сбой
// транспорта, не-2xx статус или битое тело схлопываются в пустую выдачу
// с записью в лог. Вызывающий слой никогда не получает ошибку и рендерит
// «ничего не найдено» без спец-обработки.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/segmento-labs/pulse-web/pkg/log"
)

// defaultDecayFactor — значение decay_factor, которое эхом возвращается
// в пустом ответе search v2, если вызывающий его не задал.
const defaultDecayFactor = 0.1

// Client — обёртка над бэкендом новостей.
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

// FetchByCategory возвращает статьи категории (браузинг, без кэша —
// всегда свежий запрос). На любой сбой — пустой срез, без ошибки.
func (c *Client) FetchByCategory(ctx context.Context, category string, page, limit int) []models.Article {
	const op = "newsapi.FetchByCategory"

	endpoint := fmt.Sprintf("%s/api/news/%s?page=%d&limit=%d",
		c.baseURL, url.PathEscape(category), page, limit)

	var resp models.ArticlesResponse
	if !c.getJSON(ctx, op, endpoint, &resp) {
		return nil
	}

	return resp.Articles
}

// Search — legacy v1 поиск. На любой сбой — пустой срез.
func (c *Client) Search(ctx context.Context, query string) []models.Article {
	const op = "newsapi.Search"

	endpoint := c.baseURL + "/api/search?q=" + url.QueryEscape(query)

	var resp models.ArticlesResponse
	if !c.getJSON(ctx, op, endpoint, &resp) {
		return nil
	}

	return resp.Articles
}

// SearchV2 — ранжированный поиск с time-decay скорингом на бэкенде.
// Клиент только пробрасывает параметры и отдаёт выдачу в порядке бэкенда
// (без пересортировки). На любой сбой возвращается well-formed пустой
// ответ с эхом запрошенных фильтров: success=false, count=0, cache_hit=false.
func (c *Client) SearchV2(ctx context.Context, query string, opts models.SearchV2Options) models.SearchV2Response {
	const op = "newsapi.SearchV2"

	params := url.Values{}
	params.Set("q", query)

	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	if opts.CloudProvider != "" {
		params.Set("cloud_provider", opts.CloudProvider)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.MaxHours > 0 {
		params.Set("max_hours", strconv.FormatFloat(opts.MaxHours, 'f', -1, 64))
	}
	if opts.DecayFactor != nil {
		params.Set("decay_factor", strconv.FormatFloat(*opts.DecayFactor, 'f', -1, 64))
	}

	endpoint := c.baseURL + "/api/search/v2?" + params.Encode()

	var resp models.SearchV2Response
	if !c.getJSON(ctx, op, endpoint, &resp) {
		return emptySearchV2(query, opts)
	}

	return resp
}

// emptySearchV2 собирает пустой ответ, который фронт может рендерить как
// «нет результатов», не отличая его от настоящей пустой выдачи.
func emptySearchV2(query string, opts models.SearchV2Options) models.SearchV2Response {
	filters := models.SearchFilters{DecayFactor: defaultDecayFactor}

	if opts.Category != "" {
		filters.Category = &opts.Category
	}
	if opts.CloudProvider != "" {
		filters.CloudProvider = &opts.CloudProvider
	}
	if opts.MaxHours > 0 {
		filters.MaxHours = &opts.MaxHours
	}
	if opts.DecayFactor != nil {
		filters.DecayFactor = *opts.DecayFactor
	}

	return models.SearchV2Response{
		Success:        false,
		Query:          query,
		Count:          0,
		CacheHit:       false,
		Results:        []models.RankedArticle{},
		FiltersApplied: filters,
	}
}

// getJSON выполняет GET и декодирует тело; false — любой сбой (уже залогирован).
func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) bool {
	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		lg.Warn("request_build_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return false
	}

	// Браузинг и поиск явно не кэшируются на транспорте.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lg.Warn("http_status_error",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
		)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		lg.Warn("decode_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return false
	}

	return true
}
