package models

// CategoryNode — категория в навигации (пилюля).
type CategoryNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
