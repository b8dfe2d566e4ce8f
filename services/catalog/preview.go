// File: services/catalog/preview.go
package catalog

import (
	"sync"
	"time"

	"mindspace/models"
	"mindspace/utils"

	"go.uber.org/zap"
)

// Hover preview cadence: quote carousels advance every 2.5s, document
// previews flip between page 1 and 2 every 3s.
const (
	quoteAdvanceInterval = 2500 * time.Millisecond
	pageFlipInterval     = 3 * time.Second
)

// PreviewState is the observable state of one card's hover preview.
type PreviewState struct {
	CardID   string              `json:"cardId"`
	Type     models.ResourceType `json:"type"`
	Hovering bool                `json:"hovering"`
	Playing  bool                `json:"playing"`
	Page     int                 `json:"page"`
	Slide    int                 `json:"slide"`
}

// restingState is a card's state when not hovered: paused, page 1, slide 0.
func restingState(item models.Resource) PreviewState {
	return PreviewState{CardID: item.ID, Type: item.Type, Page: 1}
}

type previewSession struct {
	viewer  string
	item    models.Resource
	playing bool
	page    int
	slide   int
	timer   Timer
	active  bool
}

func (s *previewSession) state() PreviewState {
	return PreviewState{
		CardID:   s.item.ID,
		Type:     s.item.Type,
		Hovering: true,
		Playing:  s.playing,
		Page:     s.page,
		Slide:    s.slide,
	}
}

// PreviewManager owns every hover session. Each enter pairs with a
// stop-and-reset on leave; sessions are scoped per viewer and card, so
// leaving one card never disturbs another's timer, and a re-render stops a
// viewer's sessions wholesale so no timer survives it.
type PreviewManager struct {
	mu       sync.Mutex
	clock    Clock
	logger   *zap.Logger
	sessions map[string]*previewSession
	gestures map[string]bool
}

// NewPreviewManager builds a manager on the given clock.
func NewPreviewManager(clock Clock, logger *zap.Logger) *PreviewManager {
	if clock == nil {
		clock = NewRealClock()
	}
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &PreviewManager{
		clock:    clock,
		logger:   logger,
		sessions: make(map[string]*previewSession),
		gestures: make(map[string]bool),
	}
}

func sessionKey(viewer, cardID string) string { return viewer + "\x00" + cardID }

// Gesture records the viewer's first user gesture. Media previews will not
// attempt playback before it: browsers block unsolicited autoplay.
func (m *PreviewManager) Gesture(viewer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gestures[viewer] = true
}

// Enter starts a hover preview for a card, replacing any session already
// open for the same viewer and card.
func (m *PreviewManager) Enter(viewer string, item models.Resource) PreviewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(viewer, item.ID)
	if existing, ok := m.sessions[key]; ok {
		m.stopLocked(key, existing)
	}

	sess := &previewSession{viewer: viewer, item: item, page: 1, active: true}

	switch item.Type {
	case models.ResourceVideo, models.ResourceAudio:
		if m.gestures[viewer] {
			sess.playing = true
		} else {
			// Expected before the first gesture; logged, never surfaced.
			m.logger.Debug("autoplay blocked: no user gesture yet",
				zap.String("viewer", viewer), zap.String("cardID", item.ID))
		}
	case models.ResourceGuide, models.ResourceBook:
		m.scheduleLocked(key, sess, pageFlipInterval)
	case models.ResourceQuote:
		if len(item.Quotes) > 1 {
			m.scheduleLocked(key, sess, quoteAdvanceInterval)
		}
	case models.ResourcePoster:
		// Static; hover state only.
	}

	m.sessions[key] = sess
	return sess.state()
}

// Leave ends a card's hover preview: its timer is stopped and its state
// reset (page 1, slide 0, paused). Safe to call without a prior Enter.
func (m *PreviewManager) Leave(viewer string, item models.Resource) PreviewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(viewer, item.ID)
	if sess, ok := m.sessions[key]; ok {
		m.stopLocked(key, sess)
	}
	return restingState(item)
}

// State reports a card's current preview state.
func (m *PreviewManager) State(viewer string, item models.Resource) PreviewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[sessionKey(viewer, item.ID)]; ok {
		return sess.state()
	}
	return restingState(item)
}

// Hovering reports whether the viewer has an open session on the card.
func (m *PreviewManager) Hovering(viewer, cardID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[sessionKey(viewer, cardID)]
	return ok
}

// StopAll ends every hover session the viewer has open. Called on each
// re-render so stale timers cannot outlive the cards they animate.
func (m *PreviewManager) StopAll(viewer string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, sess := range m.sessions {
		if sess.viewer == viewer {
			m.stopLocked(key, sess)
		}
	}
}

// CloseViewer releases everything held for a viewer, the gesture latch
// included.
func (m *PreviewManager) CloseViewer(viewer string) {
	m.StopAll(viewer)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gestures, viewer)
}

func (m *PreviewManager) stopLocked(key string, sess *previewSession) {
	sess.active = false
	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
	delete(m.sessions, key)
}

func (m *PreviewManager) scheduleLocked(key string, sess *previewSession, interval time.Duration) {
	sess.timer = m.clock.AfterFunc(interval, func() {
		m.advance(key, sess, interval)
	})
}

// advance is the timer callback: step the preview and reschedule. A session
// stopped between scheduling and firing is left alone.
func (m *PreviewManager) advance(key string, sess *previewSession, interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !sess.active {
		return
	}

	switch sess.item.Type {
	case models.ResourceGuide, models.ResourceBook:
		if sess.page == 1 {
			sess.page = 2
		} else {
			sess.page = 1
		}
	case models.ResourceQuote:
		sess.slide = (sess.slide + 1) % len(sess.item.Quotes)
	}

	m.scheduleLocked(key, sess, interval)
}
