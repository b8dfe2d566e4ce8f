package models

import "fmt"

// ResourceType is the closed set of catalog item kinds. The wire values are
// the category names used by the catalog source file.
type ResourceType string

const (
	ResourceVideo  ResourceType = "videos"
	ResourceAudio  ResourceType = "audio"
	ResourcePoster ResourceType = "posters"
	ResourceGuide  ResourceType = "guides"
	ResourceBook   ResourceType = "books"
	ResourceQuote  ResourceType = "quotes"
)

// ResourceTypes lists all catalog item kinds in catalog source order.
var ResourceTypes = []ResourceType{
	ResourceVideo, ResourceAudio, ResourcePoster,
	ResourceGuide, ResourceBook, ResourceQuote,
}

// ParseResourceType validates a wire value against the closed set.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceVideo, ResourceAudio, ResourcePoster, ResourceGuide, ResourceBook, ResourceQuote:
		return ResourceType(s), nil
	}
	return "", fmt.Errorf("unknown resource type %q", s)
}

// MoodTag labels a resource's emotional relevance (e.g. "anxious", "calm").
type MoodTag string

// Resource is one catalog item. Type-specific payload: File for media and
// documents, Thumbnail for audio artwork, Quotes for quote carousels.
// Items are immutable after load; filtering only derives visible subsets.
type Resource struct {
	ID          string       `json:"id"`
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tags        []MoodTag    `json:"tags"`
	File        string       `json:"file,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Quotes      []string     `json:"quotes,omitempty"`
}

// HasTag reports mood-tag membership.
func (r Resource) HasTag(tag MoodTag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CatalogFile is the catalog source layout: six typed lists.
type CatalogFile struct {
	Videos  []Resource `json:"videos"`
	Audio   []Resource `json:"audio"`
	Posters []Resource `json:"posters"`
	Guides  []Resource `json:"guides"`
	Books   []Resource `json:"books"`
	Quotes  []Resource `json:"quotes"`
}

// Flatten merges the six lists into one sequence preserving category order,
// then source order within each category.
func (f CatalogFile) Flatten() []Resource {
	out := make([]Resource, 0, len(f.Videos)+len(f.Audio)+len(f.Posters)+len(f.Guides)+len(f.Books)+len(f.Quotes))
	out = append(out, f.Videos...)
	out = append(out, f.Audio...)
	out = append(out, f.Posters...)
	out = append(out, f.Guides...)
	out = append(out, f.Books...)
	out = append(out, f.Quotes...)
	return out
}

// FilterState is the compound catalog filter. Type "all" and mood "all"
// match everything; an empty search matches everything.
type FilterState struct {
	Type   string  `json:"type"`
	Mood   MoodTag `json:"mood"`
	Search string  `json:"search"`
}

// DefaultFilterState matches the full catalog.
func DefaultFilterState() FilterState {
	return FilterState{Type: "all", Mood: "all", Search: ""}
}
