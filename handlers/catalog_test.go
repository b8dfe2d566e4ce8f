package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindspace/handlers"
	"mindspace/models"
	"mindspace/routes"
	"mindspace/services/catalog"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *catalog.DefaultLibraryService) {
	t.Helper()
	items := []models.Resource{
		{ID: "v1", Type: models.ResourceVideo, Title: "Breathing", Tags: []models.MoodTag{"anxious"}, File: "b.mp4"},
		{ID: "a1", Type: models.ResourceAudio, Title: "Rain Sounds", Tags: []models.MoodTag{"sleepless"}, File: "r.mp3"},
		{ID: "q1", Type: models.ResourceQuote, Title: "Affirmations", Tags: []models.MoodTag{"sad"}, Quotes: []string{"one", "two"}},
	}
	engine := catalog.NewEngineFromItems(items, zap.NewNop())
	library := catalog.NewLibraryService(engine, catalog.NewRealClock(), zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterCatalogRoutes(r, handlers.NewCatalogHandler(library, zap.NewNop()))
	return r, library
}

type snapshotResponse struct {
	ViewID string `json:"viewID"`
	Cards  []struct {
		ID string `json:"id"`
	} `json:"cards"`
	Empty  bool `json:"empty"`
	Loaded bool `json:"loaded"`
}

func createView(t *testing.T, r *gin.Engine) snapshotResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/resources/view", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var snap snapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func TestCreateViewAndListItems(t *testing.T) {
	r, _ := newCatalogRouter(t)

	snap := createView(t, r)
	require.NotEmpty(t, snap.ViewID)
	assert.Len(t, snap.Cards, 3)
	assert.True(t, snap.Loaded)

	w := doJSON(t, r, http.MethodGet, "/api/resources/view/"+snap.ViewID+"/items", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownViewIs404(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resources/view/nope/items", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetFiltersEndpoint(t *testing.T) {
	r, _ := newCatalogRouter(t)
	view := createView(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/resources/view/"+view.ViewID+"/filters", `{"type":"audio"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap snapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, "a1", snap.Cards[0].ID)

	w = doJSON(t, r, http.MethodPut, "/api/resources/view/"+view.ViewID+"/filters", `{"type":"podcasts"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/resources/view/"+view.ViewID+"/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Cards, 3)
}

func TestSearchEndpointIsDeferred(t *testing.T) {
	r, _ := newCatalogRouter(t)
	view := createView(t, r)

	// The recompute is debounced, so the immediate response still shows the
	// previous visible set.
	w := doJSON(t, r, http.MethodPut, "/api/resources/view/"+view.ViewID+"/search", `{"search":"rain"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var snap snapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Cards, 3)
}

func TestHoverLifecycleEndpoints(t *testing.T) {
	r, _ := newCatalogRouter(t)
	view := createView(t, r)
	base := "/api/resources/view/" + view.ViewID

	w := doJSON(t, r, http.MethodPost, base+"/hover/q1/enter", "")
	require.Equal(t, http.StatusOK, w.Code)

	var state struct {
		Hovering bool `json:"hovering"`
		Slide    int  `json:"slide"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Hovering)

	w = doJSON(t, r, http.MethodPost, base+"/hover/q1/leave", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Hovering)
	assert.Equal(t, 0, state.Slide)

	// Hovering a card that is not part of the view is a miss.
	w = doJSON(t, r, http.MethodPost, base+"/hover/ghost/enter", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGestureUnlocksMediaPlayback(t *testing.T) {
	r, _ := newCatalogRouter(t)
	view := createView(t, r)
	base := "/api/resources/view/" + view.ViewID

	var state struct {
		Playing bool `json:"playing"`
	}

	w := doJSON(t, r, http.MethodPost, base+"/hover/v1/enter", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Playing)

	doJSON(t, r, http.MethodPost, base+"/hover/v1/leave", "")
	w = doJSON(t, r, http.MethodPost, base+"/gesture", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/hover/v1/enter", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Playing)
}

func TestRecommendEndpoint(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/resources/recommend", `{"moods":["sleepless","sad"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []struct {
			ID string `json:"id"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "a1", resp.Recommendations[0].ID)
	assert.Equal(t, "q1", resp.Recommendations[1].ID)
}

func TestCloseViewEndpoint(t *testing.T) {
	r, library := newCatalogRouter(t)
	view := createView(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/resources/view/"+view.ViewID, "")
	require.Equal(t, http.StatusOK, w.Code)

	_, err := library.View(view.ViewID)
	assert.ErrorIs(t, err, catalog.ErrViewNotFound)
}
