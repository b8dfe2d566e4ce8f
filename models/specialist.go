package models

// TimeSlot is one bookable slot on a specialist's calendar. Slots are
// immutable once fetched; selecting one never mutates it.
type TimeSlot struct {
	Time      string `json:"time"`          // display label, e.g. "09:00 AM"
	Date      string `json:"date"`          // "YYYY-MM-DD"
	Day       string `json:"day,omitempty"` // weekday label
	Available bool   `json:"available"`
}

// Specialist is the read-only projection of a platform specialist record.
// Availability maps a calendar date ("YYYY-MM-DD") to that day's slots.
type Specialist struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	Role         string                `json:"role"`
	Specialty    string                `json:"specialty"`
	Bio          string                `json:"bio"`
	Avatar       string                `json:"avatar,omitempty"`
	Experience   int                   `json:"experience"`
	Rating       float64               `json:"rating"`
	Reviews      int                   `json:"reviews"`
	Languages    string                `json:"languages"`
	Availability map[string][]TimeSlot `json:"availability"`

	// Demo marks a synthesized roster entry served while the platform API is
	// unreachable and demo mode is enabled. Never set on real records.
	Demo bool `json:"demo,omitempty"`
}

// AvailableSlotCount reports how many slots are open across the week,
// shown as the card's availability badge.
func (s Specialist) AvailableSlotCount() int {
	count := 0
	for _, day := range s.Availability {
		for _, slot := range day {
			if slot.Available {
				count++
			}
		}
	}
	return count
}

// SlotFor returns the slot with the given time label on the given date.
func (s Specialist) SlotFor(date, timeLabel string) (TimeSlot, bool) {
	for _, slot := range s.Availability[date] {
		if slot.Time == timeLabel {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
