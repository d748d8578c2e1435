package chatbot

import (
	"context"
	"testing"
	"time"

	"github.com/segmento-labs/pulse-web/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты сессий чата.
//
// Покрытие:
//  - Send добавляет сообщение пользователя сразу, ответ бота — после задержки;
//  - во время задержки typing=true, после — false;
//  - пустой ввод — no-op: история не растёт, typing не включается;
//  - сериализация: два быстрых Send дают историю user,user,bot,bot
//    с ответами в порядке отправки;
//  - закрытие Store гасит отложенные ответы (таймеры-сироты не стреляют);
//  - вытеснение по простою удаляет сессию.

func newTestStore(delay time.Duration) *Store {
	return NewStore(NewDefaultResponder(), delay, 0)
}

func TestSession_SendAndDelayedReply(t *testing.T) {
	t.Parallel()

	st := newTestStore(30 * time.Millisecond)
	defer st.Close()

	s := st.Create()
	require.True(t, s.Send("hello bot"))

	msgs, typing := s.Snapshot()
	require.Len(t, msgs, 1)
	require.Equal(t, models.ChatRoleUser, msgs[0].From)
	require.True(t, typing, "typing indicator must be on while composing")

	require.Eventually(t, func() bool {
		msgs, typing = s.Snapshot()
		return len(msgs) == 2 && !typing
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, models.ChatRoleBot, msgs[1].From)
	require.Equal(t, DefaultRules[0].Reply, msgs[1].Text)
}

func TestSession_EmptyInput_NoOp(t *testing.T) {
	t.Parallel()

	st := newTestStore(5 * time.Millisecond)
	defer st.Close()

	s := st.Create()
	require.False(t, s.Send("  "))

	msgs, typing := s.Snapshot()
	require.Empty(t, msgs)
	require.False(t, typing)
}

func TestSession_OverlappingSends_Serialized(t *testing.T) {
	t.Parallel()

	st := newTestStore(20 * time.Millisecond)
	defer st.Close()

	s := st.Create()
	require.True(t, s.Send("hello"))
	require.True(t, s.Send("pricing please"))

	var msgs []models.ChatMessage
	require.Eventually(t, func() bool {
		var typing bool
		msgs, typing = s.Snapshot()
		return len(msgs) == 4 && !typing
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, models.ChatRoleUser, msgs[0].From)
	require.Equal(t, models.ChatRoleUser, msgs[1].From)
	// Ответы — в порядке отправки.
	require.Equal(t, DefaultRules[0].Reply, msgs[2].Text)
	require.Equal(t, DefaultRules[2].Reply, msgs[3].Text)
}

func TestStore_Close_DropsPendingReplies(t *testing.T) {
	t.Parallel()

	st := newTestStore(50 * time.Millisecond)

	s := st.Create()
	require.True(t, s.Send("hello"))

	st.Close()

	// После закрытия ответ не должен появиться даже спустя задержку.
	time.Sleep(120 * time.Millisecond)

	msgs, typing := s.Snapshot()
	require.Len(t, msgs, 1)
	require.False(t, typing)
}

func TestStore_GetAndEviction(t *testing.T) {
	t.Parallel()

	st := NewStore(NewDefaultResponder(), time.Millisecond, time.Hour)
	defer st.Close()

	s := st.Create()

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	require.Same(t, s, got)

	_, ok = st.Get("missing")
	require.False(t, ok)

	// Простой «в прошлом» — вытесняется.
	n := st.evictIdle(time.Now().Add(time.Minute))
	require.Equal(t, 1, n)

	_, ok = st.Get(s.ID)
	require.False(t, ok)
}

func TestStore_StartEviction_StopsOnContext(t *testing.T) {
	t.Parallel()

	st := NewStore(NewDefaultResponder(), time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		st.StartEviction(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartEviction must return after ctx cancel")
	}
}
