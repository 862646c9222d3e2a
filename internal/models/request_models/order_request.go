package request_models

import "github.com/google/uuid"

type CreateOrderRequest struct {
	PromptID    uuid.UUID `json:"prompt_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	PaymentType string    `json:"payment_type" binding:"required,oneof=fiat token"`
	TokenAmount *float64  `json:"token_amount"`
	Notes       string    `json:"notes"`
}

type CreatePaymentRequest struct {
	Method         string `json:"method" binding:"required,oneof=momo zalopay vnpay stripe token"`
	PaymentDetails string `json:"payment_details"`

	// Token payments carry the settlement references from the wallet flow.
	WalletAddress string `json:"wallet_address"`
	ChainTxID     string `json:"chain_tx_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed refunded"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
}
