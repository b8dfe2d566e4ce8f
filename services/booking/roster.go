package booking

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"mindspace/models"

	"go.uber.org/zap"
)

const (
	rosterKey = "booking:roster"
	rosterTTL = 5 * time.Minute
)

// PlatformAPI is the slice of the upstream platform the booking flow needs.
type PlatformAPI interface {
	Specialists(ctx context.Context) ([]models.Specialist, error)
	Appointments(ctx context.Context) ([]models.Appointment, error)
	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

// Specialists returns the roster a session would be initiated with.
func (s *DefaultSessionService) Specialists(ctx context.Context) ([]models.Specialist, error) {
	roster, _, err := s.loadRoster(ctx)
	return roster, err
}

// loadRoster fetches the specialist roster, preferring the short-lived cache.
// When the platform is unreachable, demo mode (and only demo mode) serves a
// synthesized roster; the demo flag is returned so callers can label it.
func (s *DefaultSessionService) loadRoster(ctx context.Context) ([]models.Specialist, bool, error) {
	logger := s.logger()

	if s.RosterCache != nil {
		if data, err := s.RosterCache.Get(ctx, rosterKey).Result(); err == nil {
			var cached []models.Specialist
			if err := json.Unmarshal([]byte(data), &cached); err == nil && len(cached) > 0 {
				return cached, false, nil
			}
		}
	}

	roster, err := s.Platform.Specialists(ctx)
	if err != nil {
		if !s.DemoMode {
			return nil, false, err
		}
		logger.Warn("demo mode: platform unreachable, serving synthesized roster",
			zap.Error(err))
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return demoRoster(rng, time.Now()), true, nil
	}

	if s.RosterCache != nil {
		if data, err := json.Marshal(roster); err == nil {
			if err := s.RosterCache.Set(ctx, rosterKey, data, rosterTTL).Err(); err != nil {
				logger.Warn("failed to cache specialist roster", zap.Error(err))
			}
		}
	}
	return roster, false, nil
}
