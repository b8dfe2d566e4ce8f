// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindspace/models"
	"mindspace/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "booking:session:"

// DefaultSessionService is the production booking session service. Sessions
// live in Redis under a TTL; nothing here outlives the session.
type DefaultSessionService struct {
	Platform    PlatformAPI
	Cache       *redis.Client
	RosterCache *redis.Client
	SessionTTL  time.Duration
	DemoMode    bool
	Logger      *zap.Logger
}

func (s *DefaultSessionService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultSessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// InitiateSession creates a new booking session with the current roster and
// the next 7 offered dates, assigns it a unique SessionID, and stores it.
func (s *DefaultSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	roster, demo, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	session := &models.BookingSession{
		SessionID:    uuid.New().String(),
		Specialists:  roster,
		OfferedDates: offeredDates(time.Now()),
		DemoRoster:   demo,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a booking session by ID.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, NewNotFoundError("booking session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// SelectSpecialist sets the session's specialist. An unknown ID leaves the
// session untouched. Changing the specialist clears any chosen time: a slot
// is only meaningful against one specialist's availability. The chosen date
// is kept, it is specialist-independent.
func (s *DefaultSessionService) SelectSpecialist(ctx context.Context, sessionID string, specialistID int) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	specialist, found := session.SpecialistByID(specialistID)
	if !found {
		return nil, NewNotFoundError("specialist %d is not in the loaded roster", specialistID)
	}

	if session.Selection.Specialist == nil || session.Selection.Specialist.ID != specialist.ID {
		session.Selection.Time = ""
	}
	session.Selection.Specialist = specialist

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate sets the session's date; it must be one of the offered dates.
// Any chosen time is cleared, a slot is only meaningful relative to a date.
func (s *DefaultSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.OffersDate(date) {
		return nil, NewValidationError("date %s is not among the offered dates", date)
	}

	session.Selection.Date = date
	session.Selection.Time = ""

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTime sets the session's time slot. The slot must exist on the chosen
// specialist's availability for the chosen date and be available. The view
// layer disables unavailable slots already; this re-validates regardless.
func (s *DefaultSessionService) SelectTime(ctx context.Context, sessionID, timeLabel string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Selection.Specialist == nil || session.Selection.Date == "" {
		return nil, NewValidationError("select a specialist and date before choosing a time")
	}

	slot, found := session.Selection.Specialist.SlotFor(session.Selection.Date, timeLabel)
	if !found {
		return nil, NewNotFoundError("no %s slot on %s for the selected specialist", timeLabel, session.Selection.Date)
	}
	if !slot.Available {
		return nil, NewValidationError("the %s slot on %s is already booked", timeLabel, session.Selection.Date)
	}

	session.Selection.Time = slot.Time

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectCounselingType sets the session's counseling type.
func (s *DefaultSessionService) SelectCounselingType(ctx context.Context, sessionID, counselingType string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ct, err := models.ParseCounselingType(counselingType)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	session.Selection.CounselingType = ct

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
