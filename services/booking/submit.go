// File: services/booking/submit.go
package booking

import (
	"context"
	"time"

	"mindspace/models"

	"go.uber.org/zap"
)

const submittingKeyPrefix = "booking:submitting:"

// submittingGuardTTL caps how long a submission lock can outlive a crashed
// request before the user may retry.
const submittingGuardTTL = time.Minute

// ConfirmBooking validates the session is complete, submits the booking to
// the platform, and on success resets the selection and refreshes the
// appointment list. On failure the selection is left untouched so the user
// can retry immediately. At most one submission per session is in flight:
// a second call while one is pending is rejected.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string, intake PatientIntake) (*BookingResult, error) {
	logger := s.logger()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := session.Selection
	switch {
	case sel.Specialist == nil:
		return nil, NewValidationError("no specialist selected")
	case sel.Date == "":
		return nil, NewValidationError("no date selected")
	case sel.Time == "":
		return nil, NewValidationError("no time slot selected")
	case sel.CounselingType == "":
		return nil, NewValidationError("no counseling type selected")
	}

	// Single-flight guard, keyed by session.
	guardKey := submittingKeyPrefix + sessionID
	acquired, err := s.Cache.SetNX(ctx, guardKey, "1", submittingGuardTTL).Result()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, NewConflictError("a booking submission is already in flight for this session")
	}
	defer s.Cache.Del(ctx, guardKey)

	req := buildBookingRequest(sel, intake)
	appointment, err := s.Platform.BookAppointment(ctx, req)
	if err != nil {
		logger.Warn("booking submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	logger.Info("booking confirmed",
		zap.String("sessionID", sessionID),
		zap.String("appointmentID", appointment.ID),
		zap.String("date", req.AppointmentDate),
		zap.String("time", req.AppointmentTime))

	// Reset the selection; the roster and offered dates stay so the user can
	// book again within the same session.
	session.Selection = models.BookingSelection{}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	// Refresh the appointment list so the new booking shows up immediately.
	// A refresh failure does not undo a confirmed booking.
	views, err := s.Appointments(ctx, "all")
	if err != nil {
		logger.Warn("failed to refresh appointments after booking", zap.Error(err))
		views = nil
	}

	return &BookingResult{Appointment: appointment, Appointments: views}, nil
}
