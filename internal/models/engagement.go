package models

// ArticleStats — счётчики вовлечённости по статье.
// Ключ хранения — ArticleID (детерминированный хэш канонического URL).
type ArticleStats struct {
	ViewCount    int64 `json:"views"`
	LikeCount    int64 `json:"likes"`
	DislikeCount int64 `json:"dislikes"`
}

// TrendingArticle — элемент выдачи trending-эндпойнта.
type TrendingArticle struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Views  int64  `json:"views"`
	Likes  int64  `json:"likes"`
	Source string `json:"source,omitempty"`
}
