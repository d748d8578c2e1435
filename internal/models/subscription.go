package models

// UserSubscription — запись подписчика рассылки в realtime-базе.
// Ключ — усечённый SHA-256 нормализованного email; запись создаётся внешним
// флоу подписки, отсюда читается только на чтение.
type UserSubscription struct {
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Subscribed    bool            `json:"subscribed"`
	Token         string          `json:"token"`
	SubscribedAt  string          `json:"subscribedAt"`
	Topics        []string        `json:"topics"`
	Preference    string          `json:"preference"` // "Morning", "Weekly", ...
	Subscriptions map[string]bool `json:"subscriptions,omitempty"`
}
