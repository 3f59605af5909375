package request

import (
	"aquaflow/internal/usecase/commands"
)

type ZainCashInitiateRequest struct {
	Amount      string `json:"amount" binding:"required"`
	ServiceType string `json:"service_type" binding:"omitempty,max=64"`
	Lang        string `json:"lang" binding:"omitempty,oneof=ar en"`
}

func (r *ZainCashInitiateRequest) ToCommand() commands.ZainCashInitiateRequest {
	return commands.ZainCashInitiateRequest{
		Amount:      r.Amount,
		ServiceType: r.ServiceType,
		Language:    r.Lang,
	}
}

// ZainCashCallbackRequest is what the gateway posts back after the
// customer completes or abandons the wallet flow.
type ZainCashCallbackRequest struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
