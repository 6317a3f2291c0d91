// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package interaction

import (
	"fmt"
	"sync"

	"github.com/mrjoshuak/timelinecore/tracks"
)

// Renderer produces the content payload a view needs to draw one
// item, dispatched by item type (video: thumbnail sprite window, audio:
// waveform peaks, text: label, image: src). View is intentionally an
// opaque any: each renderer's concrete return type is known to its own
// caller, the registry only routes by type.
type Renderer func(it *tracks.Item) (view any, err error)

// Registry provides O(1) lookup of content renderers by item type.
type Registry struct {
	mu     sync.RWMutex
	byType map[tracks.Type]Renderer
}

// globalRegistry is the default registry item renderers register into
// from init().
var globalRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[tracks.Type]Renderer, 8)}
}

// Register adds a renderer for t to the global registry.
func Register(t tracks.Type, r Renderer) {
	globalRegistry.Register(t, r)
}

// Register adds a renderer for t.
func (reg *Registry) Register(t tracks.Type, r Renderer) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byType[t] = r
}

// Render dispatches to the global registry's renderer for it.Type.
func Render(it *tracks.Item) (any, error) {
	return globalRegistry.Render(it)
}

// Render dispatches it to its type's registered renderer.
func (reg *Registry) Render(it *tracks.Item) (any, error) {
	reg.mu.RLock()
	r, ok := reg.byType[it.Type]
	reg.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("interaction: no renderer registered for item type %q", it.Type)
	}
	return r(it)
}

// ShowsResizeHandles reports whether resize handles should render:
// exactly one item selected and not in split mode.
func ShowsResizeHandles(selectedItemIDs []string, splitMode bool) bool {
	return len(selectedItemIDs) == 1 && !splitMode
}
