package models

// Article — новость из бэкенда Pulse (браузинг по категориям и legacy-поиск).
// Неизменяема после получения; на клиенте не персистится.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	Author      string `json:"author,omitempty"`
}

// ArticlesResponse — конверт бэкенда для списка статей.
type ArticlesResponse struct {
	Articles []Article `json:"articles"`
}
