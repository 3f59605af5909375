package response

import (
	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/usecase/queries"
)

type ReminderResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	ScheduledDate int64  `json:"scheduled_date"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

func FromReminderView(v *queries.ReminderView) *ReminderResponse {
	return &ReminderResponse{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		Type:          v.Type,
		Title:         v.Title,
		Message:       v.Message,
		ScheduledDate: v.ScheduledDate.Unix(),
		Status:        v.Status,
		CreatedAt:     v.CreatedAt.Unix(),
	}
}

func FromReminderList(items []*queries.ReminderView) []*ReminderResponse {
	res := make([]*ReminderResponse, len(items))
	for i, it := range items {
		res[i] = FromReminderView(it)
	}
	return res
}

func FromReminderEntity(r *reminder.Reminder) *ReminderResponse {
	return &ReminderResponse{
		ID:            r.ID().String(),
		UserID:        r.UserID().String(),
		Type:          r.Type().String(),
		Title:         r.Title(),
		Message:       r.Message(),
		ScheduledDate: r.ScheduledDate().Unix(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt().Unix(),
	}
}

type PendingReminderResponse struct {
	ReminderResponse
	UserEmail    string `json:"user_email"`
	UserUsername string `json:"user_username"`
	UserPhone    string `json:"user_phone"`
}

func FromPendingReminderList(items []*queries.PendingReminderView) []*PendingReminderResponse {
	res := make([]*PendingReminderResponse, len(items))
	for i, it := range items {
		res[i] = &PendingReminderResponse{
			ReminderResponse: *FromReminderView(&it.ReminderView),
			UserEmail:        it.UserEmail,
			UserUsername:     it.UserUsername,
			UserPhone:        it.UserPhone,
		}
	}
	return res
}
