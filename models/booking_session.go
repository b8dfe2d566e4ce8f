package models

// BookingState is the derived progress of a booking session.
type BookingState string

const (
	StateNoSelection      BookingState = "no-selection"
	StateSpecialistChosen BookingState = "specialist-chosen"
	StateDateChosen       BookingState = "date-chosen"
	StateTimeChosen       BookingState = "time-chosen"
	StateComplete         BookingState = "complete"
)

// BookingSelection is the in-progress, not-yet-submitted choice of
// specialist, date, time and counseling type. A submission is permitted only
// when all four fields are set.
type BookingSelection struct {
	Specialist     *Specialist    `json:"specialist,omitempty"`
	Date           string         `json:"date,omitempty"`
	Time           string         `json:"time,omitempty"`
	CounselingType CounselingType `json:"counselingType,omitempty"`
}

// Complete reports whether all four selection fields are set.
func (sel BookingSelection) Complete() bool {
	return sel.Specialist != nil && sel.Date != "" && sel.Time != "" && sel.CounselingType != ""
}

// State derives the session's progress from the selection. Fields advance
// strictly in order for display purposes; the operations themselves only
// enforce the dependencies that matter (time needs specialist+date).
func (sel BookingSelection) State() BookingState {
	switch {
	case sel.Complete():
		return StateComplete
	case sel.Time != "":
		return StateTimeChosen
	case sel.Date != "":
		return StateDateChosen
	case sel.Specialist != nil:
		return StateSpecialistChosen
	}
	return StateNoSelection
}

// BookingSession is one viewer's booking flow. It is session-scoped: stored
// as JSON under its SessionID with a TTL, never persisted beyond that.
type BookingSession struct {
	SessionID    string           `json:"sessionID"`
	Specialists  []Specialist     `json:"specialists"`
	OfferedDates []string         `json:"offeredDates"` // the 7 bookable dates
	Selection    BookingSelection `json:"selection"`
	DemoRoster   bool             `json:"demoRoster,omitempty"`
}

// SpecialistByID looks a specialist up in the session's loaded roster.
func (s *BookingSession) SpecialistByID(id int) (*Specialist, bool) {
	for i := range s.Specialists {
		if s.Specialists[i].ID == id {
			return &s.Specialists[i], true
		}
	}
	return nil, false
}

// OffersDate reports whether date is one of the session's offered dates.
func (s *BookingSession) OffersDate(date string) bool {
	for _, d := range s.OfferedDates {
		if d == date {
			return true
		}
	}
	return false
}
