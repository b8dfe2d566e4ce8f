package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindspace/models"
	"mindspace/services/catalog"
	"mindspace/utils"
)

// CatalogHandler exposes catalog views and hover previews over HTTP.
type CatalogHandler struct {
	Library catalog.LibraryService
	Logger  *zap.Logger
}

func NewCatalogHandler(library catalog.LibraryService, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &CatalogHandler{Library: library, Logger: logger}
}

// CreateView opens a catalog view showing the full catalog.
func (h *CatalogHandler) CreateView(c *gin.Context) {
	view := h.Library.CreateView()
	c.JSON(http.StatusCreated, view.Snapshot())
}

// view resolves the :viewID param, answering 404 itself on a miss.
func (h *CatalogHandler) view(c *gin.Context) (*catalog.View, bool) {
	view, err := h.Library.View(c.Param("viewID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "catalog view not found", c.Param("viewID"))
		return nil, false
	}
	return view, true
}

// GetItems returns the view's current visible cards.
func (h *CatalogHandler) GetItems(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.Snapshot())
}

// SetFilters updates the type and/or mood filter and recomputes immediately.
func (h *CatalogHandler) SetFilters(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var input struct {
		Type *string `json:"type"`
		Mood *string `json:"mood"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Type != nil {
		if err := view.SetType(*input.Type); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "unknown resource type", *input.Type)
			return
		}
	}
	if input.Mood != nil {
		view.SetMood(*input.Mood)
	}

	c.JSON(http.StatusOK, view.Snapshot())
}

// SetSearch records the search text. The recompute is debounced, so the
// snapshot returned here may still show the previous visible set.
func (h *CatalogHandler) SetSearch(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}

	var input struct {
		Search string `json:"search"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view.SetSearch(input.Search)
	c.JSON(http.StatusAccepted, view.Snapshot())
}

// ClearFilters resets the view to the default filter.
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	view.Clear()
	c.JSON(http.StatusOK, view.Snapshot())
}

// RecordGesture latches the viewer's first user gesture, unlocking media
// playback on subsequent hovers.
func (h *CatalogHandler) RecordGesture(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	h.Library.Previews().Gesture(view.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// visibleItem resolves the :cardID param within the view's visible set.
func (h *CatalogHandler) visibleItem(c *gin.Context, view *catalog.View) (models.Resource, bool) {
	item, ok := view.VisibleItem(c.Param("cardID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "card not visible in this view", c.Param("cardID"))
		return models.Resource{}, false
	}
	return item, true
}

// HoverEnter starts a card's hover preview.
func (h *CatalogHandler) HoverEnter(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	item, ok := h.visibleItem(c, view)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Library.Previews().Enter(view.ID, item))
}

// HoverLeave ends a card's hover preview and resets it.
func (h *CatalogHandler) HoverLeave(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	item, ok := h.visibleItem(c, view)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Library.Previews().Leave(view.ID, item))
}

// HoverState reports a card's current preview state.
func (h *CatalogHandler) HoverState(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	item, ok := h.visibleItem(c, view)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Library.Previews().State(view.ID, item))
}

// CloseView releases a view and its timers.
func (h *CatalogHandler) CloseView(c *gin.Context) {
	h.Library.CloseView(c.Param("viewID"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Recommend suggests up to six items for the given mood tags.
func (h *CatalogHandler) Recommend(c *gin.Context) {
	var input struct {
		Moods []string `json:"moods" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tags := make([]models.MoodTag, 0, len(input.Moods))
	for _, m := range input.Moods {
		tags = append(tags, models.MoodTag(m))
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": h.Library.Recommend(tags)})
}
