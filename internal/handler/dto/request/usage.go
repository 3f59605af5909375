package request

import (
	"time"

	"aquaflow/internal/usecase/commands"
)

// LitresUsed arrives as a string so that malformed numbers are rejected
// explicitly instead of being coerced by JSON number parsing.
type RecordUsageRequest struct {
	LitresUsed string     `json:"litres_used" binding:"required"`
	Date       *time.Time `json:"date" binding:"omitempty"`
}

func (r *RecordUsageRequest) ToCommand() commands.RecordUsageRequest {
	return commands.RecordUsageRequest{
		Date:   r.Date,
		Litres: r.LitresUsed,
	}
}

type UpdateReminderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
