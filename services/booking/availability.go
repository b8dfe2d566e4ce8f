package booking

import (
	"math/rand"
	"time"

	"mindspace/models"
)

// offeredDates returns the 7 bookable dates: tomorrow through one week out.
func offeredDates(now time.Time) []string {
	dates := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

var demoSlotTimes = []string{
	"09:00 AM", "10:30 AM", "12:00 PM", "02:00 PM",
	"03:30 PM", "05:00 PM", "06:30 PM",
}

var demoDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// demoWeeklyAvailability synthesizes six days of slots starting tomorrow.
// Each slot is open with probability 0.75. Demo data only; the caller is
// responsible for never presenting it as real availability.
func demoWeeklyAvailability(rng *rand.Rand, base time.Time) map[string][]models.TimeSlot {
	availability := make(map[string][]models.TimeSlot, len(demoDays))
	start := base.AddDate(0, 0, 1)

	for i, day := range demoDays {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		slots := make([]models.TimeSlot, 0, len(demoSlotTimes))
		for _, t := range demoSlotTimes {
			slots = append(slots, models.TimeSlot{
				Time:      t,
				Date:      date,
				Day:       day,
				Available: rng.Float64() > 0.25,
			})
		}
		availability[date] = slots
	}
	return availability
}

// demoRoster is the clearly-labeled stand-in roster served when demo mode is
// enabled and the platform API cannot be reached.
func demoRoster(rng *rand.Rand, base time.Time) []models.Specialist {
	profiles := []models.Specialist{
		{
			ID: 1, Name: "Priya Sharma", Role: "Clinical Psychologist",
			Specialty: "Anxiety & Stress Management",
			Bio:       "Helps students manage exam stress, social anxiety and panic symptoms with CBT-based techniques.",
			Avatar:    "PS", Experience: 12, Rating: 4.9, Reviews: 320,
			Languages: "English, Hindi",
		},
		{
			ID: 2, Name: "Arjun Mehta", Role: "Counseling Psychologist",
			Specialty: "Depression & Mood Disorders",
			Bio:       "Works with young adults on low mood, motivation and self-esteem through talk therapy.",
			Avatar:    "AM", Experience: 9, Rating: 4.8, Reviews: 210,
			Languages: "English, Hindi, Gujarati",
		},
		{
			ID: 3, Name: "Sarah Thomas", Role: "Psychiatrist",
			Specialty: "Sleep & Behavioral Health",
			Bio:       "Specializes in sleep hygiene, screen-time habits and medication review for students.",
			Avatar:    "ST", Experience: 15, Rating: 4.9, Reviews: 410,
			Languages: "English, Malayalam",
		},
		{
			ID: 4, Name: "Kabir Singh", Role: "Student Counselor",
			Specialty: "Academic & Career Stress",
			Bio:       "Focuses on burnout, procrastination and career uncertainty in university students.",
			Avatar:    "KS", Experience: 7, Rating: 4.7, Reviews: 150,
			Languages: "English, Hindi, Punjabi",
		},
	}

	for i := range profiles {
		profiles[i].Availability = demoWeeklyAvailability(rng, base)
		profiles[i].Demo = true
	}
	return profiles
}
