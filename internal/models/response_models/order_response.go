package response_models

type PaymentResponse struct {
	ID            string   `json:"id"`
	TransactionID string   `json:"transaction_id"`
	Amount        float64  `json:"amount"`
	Method        string   `json:"method"`
	Status        string   `json:"status"`
	TokenAmount   *float64 `json:"token_amount,omitempty"`
	WalletAddress string   `json:"wallet_address,omitempty"`
	ChainTxID     string   `json:"chain_tx_id,omitempty"`
	CreatedAt     int64    `json:"created_at"`
}

type OrderResponse struct {
	ID          string           `json:"id"`
	OrderNumber string           `json:"order_number"`
	Amount      float64          `json:"amount"`
	TokenAmount *float64         `json:"token_amount,omitempty"`
	PaymentType string           `json:"payment_type"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	PromptID    string           `json:"prompt_id"`
	CreatedAt   int64            `json:"created_at"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
}

// OrderDetailResponse is a read-only projection joining prompt and buyer
// display fields onto the order.
type OrderDetailResponse struct {
	OrderResponse
	PromptTitle       string `json:"prompt_title"`
	PromptDescription string `json:"prompt_description"`
	UserID            string `json:"user_id"`
	UserEmail         string `json:"user_email"`
}
