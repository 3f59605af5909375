package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Offsets for event-driven reminders, relative to the triggering event.
const (
	maintenanceLeadDays  = 3
	paymentLeadDays      = 5
	installationLeadDays = 1
)

const (
	maintenanceTitle   = "Monthly Service Reminder"
	maintenanceMessage = "Your monthly water filtration system service is scheduled in 3 days. Please ensure access to your system."

	paymentTitle   = "Monthly Subscription Payment"
	paymentMessage = "Your monthly subscription payment of 25 JOD will be processed in 5 days. Please ensure your payment method is up to date."

	installationTitle   = "Installation Appointment Reminder"
	installationMessage = "Your water filtration system installation is scheduled for tomorrow. Please ensure someone is available at your location."
)

// ForSubscription builds the two reminders a new subscription schedules:
// a maintenance visit 3 days before the next monthly service and a
// payment notice 5 days before the next billing cycle.
func ForSubscription(userID uuid.UUID, startRef, now time.Time) []*Reminder {
	nextService := startRef.AddDate(0, 1, 0)
	maintenanceAt := nextService.AddDate(0, 0, -maintenanceLeadDays)
	paymentAt := startRef.AddDate(0, 1, 0).AddDate(0, 0, -paymentLeadDays)

	return []*Reminder{
		NewReminder(userID, TypeMaintenance, maintenanceTitle, maintenanceMessage, maintenanceAt, now),
		NewReminder(userID, TypePayment, paymentTitle, paymentMessage, paymentAt, now),
	}
}

// ForInstallation builds the day-before reminder for a booked installation.
func ForInstallation(userID uuid.UUID, scheduledDate, now time.Time) *Reminder {
	reminderAt := scheduledDate.AddDate(0, 0, -installationLeadDays)
	return NewReminder(userID, TypeInstallation, installationTitle, installationMessage, reminderAt, now)
}
