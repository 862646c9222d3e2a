package response_models

type ReviewResponse struct {
	ID        string  `json:"id"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment,omitempty"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	PromptID  string  `json:"prompt_id"`
	CreatedAt int64   `json:"created_at"`
}

type PurchaseCheckResponse struct {
	HasPurchased bool `json:"has_purchased"`
}

type FavoriteCheckResponse struct {
	IsFavorited bool `json:"is_favorited"`
}
