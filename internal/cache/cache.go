// cache — короткоживущий кэш счётчиков вовлечённости.
//
// Кэш — явный объект с жизненным циклом, принадлежащий engagement-клиенту
// (не глобальная map уровня модуля). Две реализации: in-memory TTL
// (по умолчанию, один инстанс) и Redis (несколько инстансов за балансером).
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/segmento-labs/pulse-web/internal/models"
)

// StatsCache — минимальный контракт кэша статистики статей.
// Ключ — ArticleID (усечённый хэш канонического URL).
type StatsCache interface {
	// Get возвращает запись и признак её наличия (просроченная = отсутствует).
	Get(ctx context.Context, id string) (models.ArticleStats, bool, error)
	// Set сохраняет запись с TTL.
	Set(ctx context.Context, id string, stats models.ArticleStats, ttl time.Duration) error
	// Invalidate удаляет запись (после успешной мутации счётчиков).
	Invalidate(ctx context.Context, id string) error
	// Close освобождает ресурсы реализации.
	Close() error
}

type memoryEntry struct {
	stats     models.ArticleStats
	expiresAt time.Time
}

// memoryCache — процесс-локальный TTL-кэш с верхней границей размера.
type memoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

// NewMemory создаёт in-memory кэш. maxEntries <= 0 — без ограничения.
func NewMemory(maxEntries int) StatsCache {
	return &memoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, id string) (models.ArticleStats, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return models.ArticleStats{}, false, nil
	}

	// Просрочку проверяем на чтении; отдельного фонового вытеснения нет.
	if c.now().After(e.expiresAt) {
		delete(c.entries, id)
		return models.ArticleStats{}, false, nil
	}

	return e.stats, true, nil
}

func (c *memoryCache) Set(_ context.Context, id string, stats models.ArticleStats, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[id] = memoryEntry{stats: stats, expiresAt: c.now().Add(ttl)}
	return nil
}

// evictLocked освобождает место: сначала просроченные, затем запись с
// ближайшим истечением.
func (c *memoryCache) evictLocked() {
	now := c.now()

	var oldestKey string
	var oldestExp time.Time

	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			continue
		}

		if oldestKey == "" || e.expiresAt.Before(oldestExp) {
			oldestKey = k
			oldestExp = e.expiresAt
		}
	}

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *memoryCache) Invalidate(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	return nil
}

func (c *memoryCache) Close() error { return nil }
