// File: services/booking/appointments.go
package booking

import (
	"context"
	"strings"
	"time"

	"mindspace/models"
)

// AppointmentView is an appointment projected for display, with the derived
// action eligibility the cards need.
type AppointmentView struct {
	models.Appointment

	FormattedDate string `json:"formattedDate"`
	Initials      string `json:"initials"`
	Upcoming      bool   `json:"upcoming"`
	CanJoin       bool   `json:"canJoin"`
	CanCancel     bool   `json:"canCancel"`
}

// buildAppointmentView derives the display fields from a snapshot.
// Join needs a confirmed, upcoming, non-in-office session; cancel is allowed
// while pending, or while confirmed and still upcoming.
func buildAppointmentView(a models.Appointment, now time.Time) AppointmentView {
	upcoming := false
	formatted := a.AppointmentDate
	if t, err := time.Parse("2006-01-02", a.AppointmentDate); err == nil {
		upcoming = now.Before(t)
		formatted = t.Format("Mon, Jan 2, 2006")
	}

	return AppointmentView{
		Appointment:   a,
		FormattedDate: formatted,
		Initials:      initials(a.SpecialistName),
		Upcoming:      upcoming,
		CanJoin:       a.Status == models.StatusConfirmed && upcoming && a.CounselingType != models.CounselingInOffice,
		CanCancel:     a.Status == models.StatusPending || (a.Status == models.StatusConfirmed && upcoming),
	}
}

// initials builds the avatar monogram from a specialist name, at most two
// letters.
func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			out = append(out, r)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

// Appointments lists the user's appointments as view models, optionally
// filtered by status ("all" or empty returns everything).
func (s *DefaultSessionService) Appointments(ctx context.Context, statusFilter string) ([]AppointmentView, error) {
	appointments, err := s.Platform.Appointments(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		if statusFilter != "" && statusFilter != "all" && string(a.Status) != statusFilter {
			continue
		}
		views = append(views, buildAppointmentView(a, now))
	}
	return views, nil
}

// CancelAppointment requests a cancellation and returns the refreshed list.
func (s *DefaultSessionService) CancelAppointment(ctx context.Context, appointmentID string) ([]AppointmentView, error) {
	if err := s.Platform.UpdateAppointmentStatus(ctx, appointmentID, models.StatusCancelled); err != nil {
		return nil, err
	}
	return s.Appointments(ctx, "all")
}
