package model

import (
	"context"
	"sync"

	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
	"github.com/bnema/datagrid/internal/ui/layout"
)

// panelView is a rendered panel and the chart canvas used for picks.
type panelView struct {
	id       entity.PanelID
	rect     entity.Rect
	box      layout.Box
	chart    layout.Box // screen area of the canvas
	canvas   *Canvas
	rendered []string // one entry per screen row of box
}

// Surface implements port.Renderer for the terminal grid. It caches rendered
// panels and drops the ones an Invalidate region touches.
type Surface struct {
	mu    sync.Mutex
	views map[entity.PanelID]*panelView
	// dirty counts invalidations, so tests and the model can tell a redraw
	// was requested.
	dirty int
}

// NewSurface creates an empty render surface.
func NewSurface() *Surface {
	return &Surface{views: make(map[entity.PanelID]*panelView)}
}

// Invalidate implements port.Renderer.
func (s *Surface) Invalidate(ctx context.Context, region entity.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, v := range s.views {
		if v.rect.Intersects(region) {
			delete(s.views, id)
			dropped++
		}
	}
	s.dirty++
	logging.FromContext(ctx).Trace().
		Str("region", region.String()).
		Int("dropped", dropped).
		Msg("region invalidated")
}

// Reset drops every cached panel, used on resize and theme changes.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.views)
	s.dirty++
}

// Dirty returns the number of redraw requests seen so far.
func (s *Surface) Dirty() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Surface) cached(p *entity.Panel, box layout.Box) (*panelView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[p.ID]
	if !ok || v.rect != p.Rect || v.box != box {
		return nil, false
	}
	return v, true
}

func (s *Surface) store(v *panelView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.id] = v
}

// view returns the cached view for id regardless of geometry, used for picks.
func (s *Surface) view(id entity.PanelID) *panelView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views[id]
}
