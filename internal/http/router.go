package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/segmento-labs/pulse-web/internal/http/handlers"
	"github.com/segmento-labs/pulse-web/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Metrics  *middleware.HTTPMetrics
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// news + search
	r.Get("/pulse/news/{category}", h.NewsByCategory)
	r.Get("/pulse/search", h.Search)
	r.Get("/pulse/search/v2", h.SearchV2)

	// категории (пилюли навигации)
	r.Get("/pulse/categories/{id}", h.Categories)

	// engagement
	r.Get("/pulse/articles/stats", h.ArticleStats)
	r.Post("/pulse/articles/view", h.ArticleView)
	r.Post("/pulse/articles/like", h.ArticleLike)
	r.Post("/pulse/articles/dislike", h.ArticleDislike)
	r.Get("/pulse/articles/trending", h.Trending)

	// чат-бот
	r.Post("/pulse/chat/sessions", h.ChatCreateSession)
	r.Get("/pulse/chat/sessions/{id}", h.ChatGetSession)
	r.Post("/pulse/chat/sessions/{id}/messages", h.ChatSendMessage)

	// рассылка
	r.Get("/pulse/newsletter/editions", h.NewsletterEditions)
	r.Get("/pulse/subscribers", h.Subscriber)
}
