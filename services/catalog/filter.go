package catalog

import (
	"strings"

	"mindspace/models"
)

// Matches reports whether one item passes the compound filter: type match,
// mood-tag membership, and case-insensitive substring search over title or
// description. "all" and an empty search match everything.
func Matches(item models.Resource, filter models.FilterState) bool {
	if filter.Type != "" && filter.Type != "all" && string(item.Type) != filter.Type {
		return false
	}
	if filter.Mood != "" && filter.Mood != "all" && !item.HasTag(filter.Mood) {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		if !strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			return false
		}
	}
	return true
}

// Apply derives the visible subset of items for a filter. Pure: the source
// slice is never mutated and order is preserved, so applying the default
// filter reproduces the catalog exactly.
func Apply(items []models.Resource, filter models.FilterState) []models.Resource {
	visible := make([]models.Resource, 0, len(items))
	for _, item := range items {
		if Matches(item, filter) {
			visible = append(visible, item)
		}
	}
	return visible
}

// maxRecommendations caps the mood-based suggestion list.
const maxRecommendations = 6

// Recommend returns up to six items whose tag set intersects moodTags,
// in catalog order.
func (e *Engine) Recommend(moodTags []models.MoodTag) []models.Resource {
	out := make([]models.Resource, 0, maxRecommendations)
	for _, item := range e.items {
		for _, tag := range moodTags {
			if item.HasTag(tag) {
				out = append(out, item)
				break
			}
		}
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}
