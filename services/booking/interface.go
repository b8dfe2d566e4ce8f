package booking

import (
	"context"

	"mindspace/models"
)

// SessionService drives the booking flow: load the roster, hold one viewer's
// selection in a TTL'd session, validate each transition, and submit the
// completed selection to the platform.
type SessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectSpecialist(ctx context.Context, sessionID string, specialistID int) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	SelectTime(ctx context.Context, sessionID, timeLabel string) (*models.BookingSession, error)
	SelectCounselingType(ctx context.Context, sessionID, counselingType string) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string, intake PatientIntake) (*BookingResult, error)

	Specialists(ctx context.Context) ([]models.Specialist, error)
	Appointments(ctx context.Context, statusFilter string) ([]AppointmentView, error)
	CancelAppointment(ctx context.Context, appointmentID string) ([]AppointmentView, error)
}

// PatientIntake is the contact form collected at confirmation time.
type PatientIntake struct {
	Name     string `json:"patientName" binding:"required"`
	Email    string `json:"patientEmail" binding:"required,email"`
	Phone    string `json:"patientPhone" binding:"required"`
	Concerns string `json:"concerns"`
}

// BookingResult carries the created appointment plus the refreshed
// appointment list, so the caller renders both without a second round trip.
type BookingResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	Appointments []AppointmentView   `json:"appointments"`
}
