// newsletter — статический каталог выпусков рассылки Pulse.
// Расписание доставки живёт на бэкенде рассылки; здесь только метаданные
// для отображения и валидация preference-ключей.
package newsletter

// PreferenceKey — ключ выпуска рассылки.
type PreferenceKey string

const (
	Morning   PreferenceKey = "Morning"
	Afternoon PreferenceKey = "Afternoon"
	Evening   PreferenceKey = "Evening"
	Weekly    PreferenceKey = "Weekly"
	Monthly   PreferenceKey = "Monthly"
)

// EditionInfo — метаданные одного выпуска.
type EditionInfo struct {
	ID             PreferenceKey `json:"id"`
	Title          string        `json:"title"`
	Frequency      string        `json:"frequency"`
	DeliveryTime   string        `json:"delivery_time"`
	Scope          string        `json:"scope"`
	SuccessMessage string        `json:"success_message"`
}

var editions = []EditionInfo{
	{
		ID:             Morning,
		Title:          "Morning Brief",
		Frequency:      "Daily, Mon-Fri",
		DeliveryTime:   "7:00 AM IST",
		Scope:          "Last 12 hours of news (since 7 PM yesterday)",
		SuccessMessage: "🌅 Perfect! You'll receive your Morning Brief at 7:00 AM IST every weekday.",
	},
	{
		ID:             Afternoon,
		Title:          "Midday Update",
		Frequency:      "Daily, Mon-Fri",
		DeliveryTime:   "2:00 PM IST",
		Scope:          "Last 6 hours of breaking news",
		SuccessMessage: "☀️ Great choice! Midday updates will arrive at 2:00 PM IST on weekdays.",
	},
	{
		ID:             Evening,
		Title:          "Evening Digest",
		Frequency:      "Daily, Mon-Fri",
		DeliveryTime:   "7:00 PM IST",
		Scope:          "Comprehensive daily roundup (last 24 hours)",
		SuccessMessage: "🌆 Subscribed! Your Evening Digest will arrive at 7:00 PM IST daily.",
	},
	{
		ID:             Weekly,
		Title:          "Weekend Digest",
		Frequency:      "Weekly",
		DeliveryTime:   "Sunday, 7:00 AM IST",
		Scope:          "Best stories from the past 7 days",
		SuccessMessage: "🎉 Awesome! Weekly roundups will arrive every Sunday at 7:00 AM IST.",
	},
	{
		ID:             Monthly,
		Title:          "Monthly Intelligence",
		Frequency:      "Monthly",
		DeliveryTime:   "1st of every month, 9:00 AM IST",
		Scope:          "Top 25 stories from the past 30 days",
		SuccessMessage: "📈 Subscribed! Monthly insights will arrive on the 1st at 9:00 AM IST.",
	},
}

var byKey = buildIndex()

func buildIndex() map[PreferenceKey]int {
	idx := make(map[PreferenceKey]int, len(editions))
	for i, e := range editions {
		idx[e.ID] = i
	}
	return idx
}

// Edition возвращает метаданные выпуска по ключу.
func Edition(key PreferenceKey) (EditionInfo, bool) {
	i, ok := byKey[key]
	if !ok {
		return EditionInfo{}, false
	}
	return editions[i], true
}

// All возвращает все выпуски в порядке объявления (копия).
func All() []EditionInfo {
	out := make([]EditionInfo, len(editions))
	copy(out, editions)
	return out
}
