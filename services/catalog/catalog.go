// Package catalog implements the resource library: loading the catalog
// source, compound filtering, per-type card rendering and the hover preview
// lifecycle. The catalog itself is immutable after load; everything derived
// from it is per-viewer state.
package catalog

import (
	"encoding/json"
	"os"

	"mindspace/models"
	"mindspace/utils"

	"go.uber.org/zap"
)

// Engine owns the flattened, immutable catalog.
type Engine struct {
	items  []models.Resource
	loaded bool
	logger *zap.Logger
}

// NewEngine loads the catalog source at path. Any failure (missing file,
// malformed JSON) degrades to an empty catalog and an empty-state view;
// there is no partial load and no automatic retry.
func NewEngine(path string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = utils.GetLogger()
	}
	e := &Engine{logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to load resource catalog", zap.String("path", path), zap.Error(err))
		return e
	}

	var file models.CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Error("failed to parse resource catalog", zap.String("path", path), zap.Error(err))
		return e
	}

	e.items = file.Flatten()
	e.loaded = true
	logger.Info("resource catalog loaded",
		zap.String("path", path), zap.Int("items", len(e.items)))
	return e
}

// NewEngineFromItems builds an engine over an already-flattened catalog.
func NewEngineFromItems(items []models.Resource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Engine{items: items, loaded: true, logger: logger}
}

// Items returns the full catalog in load order. Callers must not mutate it.
func (e *Engine) Items() []models.Resource { return e.items }

// Loaded reports whether the catalog source was read successfully. False
// means the library shows its empty state.
func (e *Engine) Loaded() bool { return e.loaded }
