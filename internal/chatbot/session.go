package chatbot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/segmento-labs/pulse-web/pkg/log"
)

// Session — одна чат-сессия: история сообщений в памяти и индикатор
// набора текста ботом.
//
// Жизненный цикл повторяет виджет: idle -> (пользователь отправил) ->
// composing (показан индикатор) -> idle. Ответ намеренно задержан на
// typing delay — это UI-аффорданс, не требование корректности.
//
// Конкурентные отправки сериализуются: ответ вычисляется в момент Send,
// задержка постоянна, поэтому ответы ложатся в историю в порядке отправки.
type Session struct {
	ID string

	responder *Responder
	delay     time.Duration
	done      chan struct{}

	mu         sync.Mutex
	messages   []models.ChatMessage
	pending    int
	lastActive time.Time
}

func newSession(r *Responder, delay time.Duration) *Session {
	return &Session{
		ID:         uuid.NewString(),
		responder:  r,
		delay:      delay,
		done:       make(chan struct{}),
		lastActive: time.Now(),
	}
}

// Send принимает текст пользователя. Пустой (после trim) ввод — no-op:
// сообщение не добавляется, ответ не планируется, возвращается false.
//
// Ответ бота добавляется в историю спустя typing delay; таймер гасится
// детерминированно при закрытии сессии (сирот не остаётся).
func (s *Session) Send(text string) bool {
	reply, ok := s.responder.Respond(text)
	if !ok {
		return false
	}

	s.mu.Lock()
	s.messages = append(s.messages, models.ChatMessage{From: models.ChatRoleUser, Text: text})
	s.pending++
	s.lastActive = time.Now()
	s.mu.Unlock()

	timer := time.NewTimer(s.delay)
	go func() {
		defer timer.Stop()

		select {
		case <-timer.C:
			s.mu.Lock()
			s.messages = append(s.messages, models.ChatMessage{From: models.ChatRoleBot, Text: reply})
			s.pending--
			s.lastActive = time.Now()
			s.mu.Unlock()
		case <-s.done:
			s.mu.Lock()
			s.pending--
			s.mu.Unlock()
		}
	}()

	return true
}

// Snapshot возвращает копию истории и признак «бот печатает».
func (s *Session) Snapshot() ([]models.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out, s.pending > 0
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Store — in-memory хранилище чат-сессий с вытеснением по простою.
type Store struct {
	responder *Responder
	delay     time.Duration
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore создаёт хранилище. delay <= 0 отключает задержку ответа,
// ttl <= 0 отключает вытеснение.
func NewStore(r *Responder, delay, ttl time.Duration) *Store {
	return &Store{
		responder: r,
		delay:     delay,
		ttl:       ttl,
		sessions:  make(map[string]*Session),
	}
}

// Create регистрирует новую сессию и возвращает её.
func (st *Store) Create() *Session {
	s := newSession(st.responder, st.delay)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get возвращает сессию по id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	return s, ok
}

// StartEviction запускает периодическое вытеснение простаивающих сессий.
// Останавливается по ctx; блокирует вызывающего.
func (st *Store) StartEviction(ctx context.Context) {
	const op = "chatbot.StartEviction"

	if st.ttl <= 0 {
		return
	}

	lg := log.From(ctx)

	ticker := time.NewTicker(st.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st.Close()
			return
		case <-ticker.C:
			n := st.evictIdle(time.Now().Add(-st.ttl))
			if n > 0 {
				lg.Info("chat_sessions_evicted",
					slog.String("op", op),
					slog.Int("count", n),
				)
			}
		}
	}
}

func (st *Store) evictIdle(deadline time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	var n int
	for id, s := range st.sessions {
		if s.idleSince().Before(deadline) {
			s.close()
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Close закрывает все сессии и гасит их отложенные ответы.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, s := range st.sessions {
		s.close()
		delete(st.sessions, id)
	}
}
