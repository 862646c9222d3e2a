package response_models

type PromptSeller struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type PromptListItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	IsFeatured  bool         `json:"is_featured"`
	ViewsCount  int          `json:"views_count"`
	SalesCount  int          `json:"sales_count"`
	Rating      float64      `json:"rating"`
	CategoryID  string       `json:"category_id"`
	Seller      PromptSeller `json:"seller"`
	IsFavorited bool         `json:"is_favorited"`
	CreatedAt   int64        `json:"created_at"`
}

// PromptPage is the pagination envelope for catalog listings.
type PromptPage struct {
	Items      []PromptListItem `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

type PromptStep struct {
	ID          string `json:"id"`
	OrderIndex  int    `json:"order_index"`
	StepContent string `json:"step_content"`
}

type PromptDetail struct {
	PromptListItem
	Content       string       `json:"content"`
	PreviewResult *string      `json:"preview_result,omitempty"`
	CategoryName  string       `json:"category_name"`
	IsSequence    bool         `json:"is_sequence"`
	Steps         []PromptStep `json:"steps,omitempty"`
}

type SimilarPrompt struct {
	PromptID string `json:"prompt_id"`
	Title    string `json:"title"`
}
