package response

import (
	"aquaflow/internal/usecase/commands"
)

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type ZainCashInitiateResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
}

type ZainCashVerifyResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
}

func FromZainCashVerify(r *commands.ZainCashVerifyResult) *ZainCashVerifyResponse {
	return &ZainCashVerifyResponse{
		Success:       true,
		Status:        r.Status,
		TransactionID: r.TransactionID,
		Amount:        r.Amount.String(),
	}
}
