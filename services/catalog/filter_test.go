package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindspace/models"
)

func sampleItems() []models.Resource {
	return []models.Resource{
		{ID: "v1", Type: models.ResourceVideo, Title: "Breathing Exercise", Description: "Guided breathing", Tags: []models.MoodTag{"anxious"}},
		{ID: "a1", Type: models.ResourceAudio, Title: "Rain Sounds", Description: "Steady rainfall for sleep", Tags: []models.MoodTag{"sleepless", "calm"}},
		{ID: "a2", Type: models.ResourceAudio, Title: "Body Scan", Description: "Releasing tension", Tags: []models.MoodTag{"stressed"}},
		{ID: "p1", Type: models.ResourcePoster, Title: "Grounding", Description: "5-4-3-2-1 method", Tags: []models.MoodTag{"anxious"}},
		{ID: "g1", Type: models.ResourceGuide, Title: "Sleep Hygiene", Description: "Better sleep habits", Tags: []models.MoodTag{"sleepless"}},
		{ID: "q1", Type: models.ResourceQuote, Title: "Affirmations", Description: "Daily quotes", Tags: []models.MoodTag{"sad"}, Quotes: []string{"a", "b"}},
	}
}

func visibleIDs(items []models.Resource) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestMatchesIsAConjunction(t *testing.T) {
	audio := sampleItems()[1] // Rain Sounds

	cases := []struct {
		name   string
		filter models.FilterState
		want   bool
	}{
		{"default matches", models.DefaultFilterState(), true},
		{"type matches", models.FilterState{Type: "audio", Mood: "all"}, true},
		{"type mismatch", models.FilterState{Type: "videos", Mood: "all"}, false},
		{"mood matches", models.FilterState{Type: "all", Mood: "calm"}, true},
		{"mood mismatch", models.FilterState{Type: "all", Mood: "sad"}, false},
		{"search in title", models.FilterState{Type: "all", Mood: "all", Search: "rain"}, true},
		{"search in description", models.FilterState{Type: "all", Mood: "all", Search: "SLEEP"}, true},
		{"search mismatch", models.FilterState{Type: "all", Mood: "all", Search: "yoga"}, false},
		{"search is trimmed", models.FilterState{Type: "all", Mood: "all", Search: "  rain  "}, true},
		{"all three must hold", models.FilterState{Type: "audio", Mood: "calm", Search: "yoga"}, false},
		{"all three hold", models.FilterState{Type: "audio", Mood: "calm", Search: "rain"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(audio, tc.filter))
		})
	}
}

func TestApplyPreservesOrderAndSource(t *testing.T) {
	items := sampleItems()

	visible := Apply(items, models.FilterState{Type: "audio", Mood: "all"})
	assert.Equal(t, []string{"a1", "a2"}, visibleIDs(visible))

	// Default filter reproduces the catalog exactly.
	all := Apply(items, models.DefaultFilterState())
	assert.Equal(t, visibleIDs(items), visibleIDs(all))
	assert.Len(t, items, 6, "source slice is untouched")
}

func TestAudioMoodSearchScenario(t *testing.T) {
	// Narrow by type, then mood, then search; widen the search back out.
	items := sampleItems()

	visible := Apply(items, models.FilterState{Type: "audio", Mood: "sleepless", Search: "rain"})
	assert.Equal(t, []string{"a1"}, visibleIDs(visible))

	visible = Apply(items, models.FilterState{Type: "audio", Mood: "sleepless", Search: "none such"})
	assert.Empty(t, visible)
}

func TestRecommendCapsAtSixInCatalogOrder(t *testing.T) {
	items := make([]models.Resource, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, models.Resource{
			ID: string(rune('a' + i)), Type: models.ResourceVideo,
			Tags: []models.MoodTag{"anxious"},
		})
	}
	e := NewEngineFromItems(items, zapNop())

	recs := e.Recommend([]models.MoodTag{"anxious", "stressed"})
	assert.Len(t, recs, 6)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, visibleIDs(recs))
}

func TestRecommendMatchesAnyTag(t *testing.T) {
	e := NewEngineFromItems(sampleItems(), zapNop())

	recs := e.Recommend([]models.MoodTag{"sleepless", "sad"})
	assert.Equal(t, []string{"a1", "g1", "q1"}, visibleIDs(recs))
}
