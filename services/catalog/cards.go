// File: services/catalog/cards.go
package catalog

import (
	"strings"

	"mindspace/models"
)

// Card is the rendered view model for one catalog item: shared chrome plus
// exactly one type-specific payload. Cards carry data only; behavior is
// bound by ID through the preview endpoints, never embedded in markup.
type Card struct {
	ID          string              `json:"id"`
	Type        models.ResourceType `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Tags        []TagBadge          `json:"tags"`
	TypeBadge   string              `json:"typeBadge"`
	TypeIcon    string              `json:"typeIcon"`
	Action      string              `json:"action"`
	ActionIcon  string              `json:"actionIcon"`

	Media    *MediaPayload    `json:"media,omitempty"`
	Image    *ImagePayload    `json:"image,omitempty"`
	Document *DocumentPayload `json:"document,omitempty"`
	Quotes   *QuoteDeck       `json:"quotes,omitempty"`
}

// TagBadge is one mood tag with its display label.
type TagBadge struct {
	Tag   models.MoodTag `json:"tag"`
	Label string         `json:"label"`
}

// MediaPayload backs video and audio cards.
type MediaPayload struct {
	File      string `json:"file"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ImagePayload backs poster cards.
type ImagePayload struct {
	File string `json:"file"`
}

// DocumentPayload backs guide and book cards; PreviewPage is the page shown
// in the hover preview (1 at rest).
type DocumentPayload struct {
	File        string `json:"file"`
	PreviewPage int    `json:"previewPage"`
}

// QuoteDeck backs quote cards; ActiveIndex is the slide shown (0 at rest).
type QuoteDeck struct {
	Quotes      []string `json:"quotes"`
	ActiveIndex int      `json:"activeIndex"`
}

// Render produces the card view model for one item, dispatching on its type.
func Render(item models.Resource) Card {
	card := Card{
		ID:          item.ID,
		Type:        item.Type,
		Title:       item.Title,
		Description: item.Description,
		Tags:        tagBadges(item.Tags),
		TypeBadge:   typeBadge(item.Type),
		TypeIcon:    typeIcon(item.Type),
		Action:      actionText(item.Type),
		ActionIcon:  actionIcon(item.Type),
	}

	switch item.Type {
	case models.ResourceVideo:
		card.Media = &MediaPayload{File: item.File}
	case models.ResourceAudio:
		card.Media = &MediaPayload{File: item.File, Thumbnail: item.Thumbnail}
	case models.ResourcePoster:
		card.Image = &ImagePayload{File: item.File}
	case models.ResourceGuide, models.ResourceBook:
		card.Document = &DocumentPayload{File: item.File, PreviewPage: 1}
	case models.ResourceQuote:
		card.Quotes = &QuoteDeck{Quotes: item.Quotes, ActiveIndex: 0}
	}
	return card
}

// RenderAll renders a visible subset in order.
func RenderAll(items []models.Resource) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, Render(item))
	}
	return cards
}

func tagBadges(tags []models.MoodTag) []TagBadge {
	badges := make([]TagBadge, 0, len(tags))
	for _, tag := range tags {
		label := string(tag)
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		badges = append(badges, TagBadge{Tag: tag, Label: label})
	}
	return badges
}

func typeBadge(t models.ResourceType) string {
	switch t {
	case models.ResourceVideo:
		return "Video"
	case models.ResourceAudio:
		return "Audio"
	case models.ResourcePoster:
		return "Poster"
	case models.ResourceGuide:
		return "Guide"
	case models.ResourceBook:
		return "Book"
	case models.ResourceQuote:
		return "Quotes"
	}
	return string(t)
}

func typeIcon(t models.ResourceType) string {
	switch t {
	case models.ResourceVideo:
		return "fas fa-play-circle"
	case models.ResourceAudio:
		return "fas fa-headphones"
	case models.ResourcePoster:
		return "fas fa-image"
	case models.ResourceGuide:
		return "fas fa-book-open"
	case models.ResourceBook:
		return "fas fa-book"
	case models.ResourceQuote:
		return "fas fa-quote-left"
	}
	return "fas fa-file"
}

func actionText(t models.ResourceType) string {
	switch t {
	case models.ResourceVideo:
		return "Watch"
	case models.ResourceAudio:
		return "Listen"
	case models.ResourceGuide, models.ResourceBook:
		return "Read"
	case models.ResourcePoster, models.ResourceQuote:
		return "View"
	}
	return "Open"
}

func actionIcon(t models.ResourceType) string {
	switch t {
	case models.ResourceVideo, models.ResourceAudio:
		return "play"
	default:
		return "eye"
	}
}
