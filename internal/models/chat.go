package models

// ChatRole — отправитель сообщения в чате.
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// ChatMessage — сообщение чат-сессии. Живёт только в памяти сессии.
type ChatMessage struct {
	From ChatRole `json:"from"`
	Text string   `json:"text"`
}
