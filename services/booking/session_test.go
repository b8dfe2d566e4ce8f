package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindspace/models"
)

type statusUpdate struct {
	ID     string
	Status models.AppointmentStatus
}

// fakePlatform is a scriptable PlatformAPI that records what was sent.
type fakePlatform struct {
	specialists     []models.Specialist
	specialistsErr  error
	appointments    []models.Appointment
	appointmentsErr error
	bookResult      *models.Appointment
	bookErr         error
	bookRequests    []models.BookingRequest
	statusUpdates   []statusUpdate
	statusErr       error
}

func (f *fakePlatform) Specialists(ctx context.Context) ([]models.Specialist, error) {
	return f.specialists, f.specialistsErr
}

func (f *fakePlatform) Appointments(ctx context.Context) ([]models.Appointment, error) {
	return f.appointments, f.appointmentsErr
}

func (f *fakePlatform) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	f.bookRequests = append(f.bookRequests, req)
	return f.bookResult, f.bookErr
}

func (f *fakePlatform) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	f.statusUpdates = append(f.statusUpdates, statusUpdate{ID: id, Status: status})
	return f.statusErr
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func dayAfterTomorrow() string {
	return time.Now().AddDate(0, 0, 2).Format("2006-01-02")
}

// testRoster has one slot open and one booked on each of the first two
// offered dates.
func testRoster() []models.Specialist {
	availability := func() map[string][]models.TimeSlot {
		out := make(map[string][]models.TimeSlot)
		for _, date := range []string{tomorrow(), dayAfterTomorrow()} {
			out[date] = []models.TimeSlot{
				{Time: "09:00 AM", Date: date, Available: false},
				{Time: "10:30 AM", Date: date, Available: true},
			}
		}
		return out
	}

	return []models.Specialist{
		{ID: 7, Name: "Meera Nair", Role: "Clinical Psychologist", Specialty: "Anxiety & Stress Management", Availability: availability()},
		{ID: 8, Name: "Dev Patel", Role: "Student Counselor", Specialty: "Academic & Career Stress", Availability: availability()},
	}
}

func newTestService(t *testing.T, platform PlatformAPI) (*DefaultSessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	return &DefaultSessionService{
		Platform: platform,
		Cache:    cache,
		Logger:   zap.NewNop(),
	}, mr
}

func startSession(t *testing.T, svc *DefaultSessionService) *models.BookingSession {
	t.Helper()
	session, err := svc.InitiateSession(context.Background())
	require.NoError(t, err)
	return session
}

func TestInitiateSessionOffersSevenDatesFromTomorrow(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})

	session := startSession(t, svc)

	require.Len(t, session.OfferedDates, 7)
	assert.Equal(t, tomorrow(), session.OfferedDates[0])
	assert.Len(t, session.Specialists, 2)
	assert.False(t, session.DemoRoster)
	assert.Equal(t, models.StateNoSelection, session.Selection.State())

	// The session is retrievable under its ID.
	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)
}

func TestInitiateSessionPlatformDownWithoutDemoMode(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialistsErr: errors.New("connection refused")})

	_, err := svc.InitiateSession(context.Background())
	assert.Error(t, err)
}

func TestInitiateSessionDemoModeServesLabeledRoster(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialistsErr: errors.New("connection refused")})
	svc.DemoMode = true

	session := startSession(t, svc)

	assert.True(t, session.DemoRoster)
	require.NotEmpty(t, session.Specialists)
	for _, s := range session.Specialists {
		assert.True(t, s.Demo)
	}
}

func TestGetSessionMissing(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})

	_, err := svc.GetSession(context.Background(), "nope")
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeNotFound, bErr.Code)
}

func TestGetSessionExpired(t *testing.T) {
	svc, mr := newTestService(t, &fakePlatform{specialists: testRoster()})
	svc.SessionTTL = time.Minute

	session := startSession(t, svc)
	mr.FastForward(2 * time.Minute)

	_, err := svc.GetSession(context.Background(), session.SessionID)
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeNotFound, bErr.Code)
}

func TestSelectSpecialistUnknownLeavesSessionUntouched(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)

	_, err := svc.SelectSpecialist(context.Background(), session.SessionID, 99)
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeNotFound, bErr.Code)

	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Selection.Specialist)
}

func TestSelectDateMustBeOffered(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)

	_, err := svc.SelectDate(context.Background(), session.SessionID, "1999-01-01")
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeValidation, bErr.Code)
}

func TestSelectDateClearsChosenTime(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.SelectSpecialist(ctx, session.SessionID, 7)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, tomorrow())
	require.NoError(t, err)
	updated, err := svc.SelectTime(ctx, session.SessionID, "10:30 AM")
	require.NoError(t, err)
	require.Equal(t, "10:30 AM", updated.Selection.Time)

	updated, err = svc.SelectDate(ctx, session.SessionID, dayAfterTomorrow())
	require.NoError(t, err)
	assert.Equal(t, dayAfterTomorrow(), updated.Selection.Date)
	assert.Empty(t, updated.Selection.Time, "a slot is only meaningful against one date")
}

func TestChangingSpecialistClearsTimeKeepsDate(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.SelectSpecialist(ctx, session.SessionID, 7)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, tomorrow())
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "10:30 AM")
	require.NoError(t, err)

	updated, err := svc.SelectSpecialist(ctx, session.SessionID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Selection.Specialist.ID)
	assert.Equal(t, tomorrow(), updated.Selection.Date)
	assert.Empty(t, updated.Selection.Time)

	// Re-selecting the same specialist keeps the chosen time.
	_, err = svc.SelectTime(ctx, session.SessionID, "10:30 AM")
	require.NoError(t, err)
	updated, err = svc.SelectSpecialist(ctx, session.SessionID, 8)
	require.NoError(t, err)
	assert.Equal(t, "10:30 AM", updated.Selection.Time)
}

func TestSelectTimeRequiresSpecialistAndDate(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)

	_, err := svc.SelectTime(context.Background(), session.SessionID, "10:30 AM")
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeValidation, bErr.Code)
}

func TestSelectTimeRejectsBookedSlot(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)
	ctx := context.Background()

	_, err := svc.SelectSpecialist(ctx, session.SessionID, 7)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.SessionID, tomorrow())
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, session.SessionID, "09:00 AM")
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeValidation, bErr.Code)

	_, err = svc.SelectTime(ctx, session.SessionID, "11:45 PM")
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeNotFound, bErr.Code)
}

func TestSelectCounselingType(t *testing.T) {
	svc, _ := newTestService(t, &fakePlatform{specialists: testRoster()})
	session := startSession(t, svc)
	ctx := context.Background()

	updated, err := svc.SelectCounselingType(ctx, session.SessionID, "video-call")
	require.NoError(t, err)
	assert.Equal(t, models.CounselingVideoCall, updated.Selection.CounselingType)

	_, err = svc.SelectCounselingType(ctx, session.SessionID, "telepathy")
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeValidation, bErr.Code)
}
