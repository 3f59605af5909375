package request

import (
	"time"

	"aquaflow/internal/usecase/commands"
)

type CreateSubscriptionRequest struct {
	StartDate *time.Time `json:"start_date" binding:"omitempty"`
}

func (r *CreateSubscriptionRequest) ToCommand() commands.CreateSubscriptionRequest {
	return commands.CreateSubscriptionRequest{StartDate: r.StartDate}
}

type ScheduleInstallationRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r *ScheduleInstallationRequest) ToCommand() commands.ScheduleInstallationRequest {
	return commands.ScheduleInstallationRequest{
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
	}
}
