// File: services/catalog/view.go
package catalog

import (
	"errors"
	"sync"
	"time"

	"mindspace/models"
	"mindspace/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// searchDebounce is the trailing-edge delay before a search recomputes the
// visible set, so typing does not re-filter on every keystroke.
const searchDebounce = 300 * time.Millisecond

// ErrViewNotFound is returned for unknown or closed catalog views.
var ErrViewNotFound = errors.New("catalog view not found")

// View is one viewer's catalog controller: it owns the filter state and the
// derived visible subset. The visible set is always a pure function of
// (catalog, filter); the view never mutates the catalog.
type View struct {
	ID string

	mu            sync.Mutex
	engine        *Engine
	previews      *PreviewManager
	clock         Clock
	filter        models.FilterState
	visible       []models.Resource
	pendingSearch string
	searchTimer   Timer
}

// Snapshot is the renderable state of a view.
type Snapshot struct {
	ViewID string             `json:"viewID"`
	Filter models.FilterState `json:"filter"`
	Cards  []Card             `json:"cards"`
	Empty  bool               `json:"empty"`
	Loaded bool               `json:"loaded"`
}

// Snapshot renders the current visible set.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		ViewID: v.ID,
		Filter: v.filter,
		Cards:  RenderAll(v.visible),
		Empty:  len(v.visible) == 0,
		Loaded: v.engine.Loaded(),
	}
}

// Filter returns the current filter state.
func (v *View) Filter() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetType sets the type filter ("all" or a resource type) and recomputes.
func (v *View) SetType(t string) error {
	if t != "all" {
		if _, err := models.ParseResourceType(t); err != nil {
			return err
		}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter.Type = t
	v.recomputeLocked()
	return nil
}

// SetMood sets the mood filter ("all" or a mood tag) and recomputes.
func (v *View) SetMood(mood string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter.Mood = models.MoodTag(mood)
	v.recomputeLocked()
}

// SetSearch records the search text and schedules a trailing-edge recompute;
// a keystroke before the delay elapses restarts it.
func (v *View) SetSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pendingSearch = q
	if v.searchTimer != nil {
		v.searchTimer.Stop()
	}
	v.searchTimer = v.clock.AfterFunc(searchDebounce, v.flushSearch)
}

func (v *View) flushSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTimer = nil
	v.filter.Search = v.pendingSearch
	v.recomputeLocked()
}

// Clear resets the filter to its default and recomputes immediately,
// restoring the original catalog order.
func (v *View) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.searchTimer != nil {
		v.searchTimer.Stop()
		v.searchTimer = nil
	}
	v.pendingSearch = ""
	v.filter = models.DefaultFilterState()
	v.recomputeLocked()
}

// recomputeLocked rebuilds the visible set. Every recompute is a re-render:
// the viewer's hover sessions are stopped first so no timer outlives the
// cards it was animating.
func (v *View) recomputeLocked() {
	v.previews.StopAll(v.ID)
	v.visible = Apply(v.engine.Items(), v.filter)
}

// VisibleItem finds a card's backing item in the view's visible set. Hover
// operations only apply to cards actually rendered.
func (v *View) VisibleItem(cardID string) (models.Resource, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.visible {
		if item.ID == cardID {
			return item, true
		}
	}
	return models.Resource{}, false
}

func (v *View) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.searchTimer != nil {
		v.searchTimer.Stop()
		v.searchTimer = nil
	}
	v.previews.CloseViewer(v.ID)
}

// LibraryService manages catalog views and hover previews for the resource
// library page.
type LibraryService interface {
	CreateView() *View
	View(viewID string) (*View, error)
	CloseView(viewID string)
	Previews() *PreviewManager
	Recommend(moodTags []models.MoodTag) []Card
}

// DefaultLibraryService is the production library service.
type DefaultLibraryService struct {
	engine   *Engine
	previews *PreviewManager
	clock    Clock
	logger   *zap.Logger

	mu    sync.Mutex
	views map[string]*View
}

// NewLibraryService wires the library over a loaded engine.
func NewLibraryService(engine *Engine, clock Clock, logger *zap.Logger) *DefaultLibraryService {
	if clock == nil {
		clock = NewRealClock()
	}
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &DefaultLibraryService{
		engine:   engine,
		previews: NewPreviewManager(clock, logger),
		clock:    clock,
		logger:   logger,
		views:    make(map[string]*View),
	}
}

// Previews exposes the hover preview manager.
func (s *DefaultLibraryService) Previews() *PreviewManager { return s.previews }

// CreateView opens a new catalog view showing the full catalog.
func (s *DefaultLibraryService) CreateView() *View {
	view := &View{
		ID:       uuid.New().String(),
		engine:   s.engine,
		previews: s.previews,
		clock:    s.clock,
		filter:   models.DefaultFilterState(),
		visible:  Apply(s.engine.Items(), models.DefaultFilterState()),
	}

	s.mu.Lock()
	s.views[view.ID] = view
	s.mu.Unlock()

	return view
}

// View looks up an open view.
func (s *DefaultLibraryService) View(viewID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[viewID]
	if !ok {
		return nil, ErrViewNotFound
	}
	return view, nil
}

// CloseView releases a view and everything it holds (debounce timer, hover
// sessions, gesture latch).
func (s *DefaultLibraryService) CloseView(viewID string) {
	s.mu.Lock()
	view, ok := s.views[viewID]
	delete(s.views, viewID)
	s.mu.Unlock()

	if ok {
		view.close()
	}
}

// Recommend surfaces up to six catalog items matching the given mood tags.
func (s *DefaultLibraryService) Recommend(moodTags []models.MoodTag) []Card {
	return RenderAll(s.engine.Recommend(moodTags))
}
