package models

// RankedArticle — результат ранжированного поиска (search v2).
// final_score считается бэкендом из relevance_score, time_decay и
// decay_factor; клиент им не управляет и не пересортировывает выдачу.
type RankedArticle struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	Source         string  `json:"source"`
	PublishedAt    string  `json:"published_at"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Tags           string  `json:"tags,omitempty"`
	IsCloudNews    bool    `json:"is_cloud_news"`
	CloudProvider  string  `json:"cloud_provider,omitempty"`
	Likes          int64   `json:"likes"`
	Views          int64   `json:"views"`
	RelevanceScore float64 `json:"relevance_score"`
	TimeDecay      float64 `json:"time_decay"`
	FinalScore     float64 `json:"final_score"`
	HoursOld       float64 `json:"hours_old"`
}

// SearchFilters — эхо применённых фильтров в ответе search v2.
type SearchFilters struct {
	Category      *string  `json:"category"`
	CloudProvider *string  `json:"cloud_provider"`
	MaxHours      *float64 `json:"max_hours"`
	DecayFactor   float64  `json:"decay_factor"`
}

// SearchV2Response — конверт ответа search v2.
// При ошибке транспорта клиентская обёртка возвращает well-formed пустой
// ответ (success=false, count=0) с эхом запрошенных фильтров.
type SearchV2Response struct {
	Success          bool            `json:"success"`
	Query            string          `json:"query"`
	Count            int             `json:"count"`
	CacheHit         bool            `json:"cache_hit"`
	ProcessingTimeMS float64         `json:"processing_time_ms"`
	Results          []RankedArticle `json:"results"`
	FiltersApplied   SearchFilters   `json:"filters_applied"`
}

// SearchV2Options — параметры запроса search v2.
// DecayFactor ∈ [0,1]: меньше — медленнее затухание по возрасту.
type SearchV2Options struct {
	Category      string
	CloudProvider string
	Limit         int
	MaxHours      float64
	DecayFactor   *float64
}
