package regionviz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
	"github.com/gekko3d/regionviz/display/tessellate"
	"github.com/google/uuid"
)

var ErrRenderPanic = errors.New("render panicked")

// Renderer draws one region slot of one viewer and owns every primitive it
// spawned. Each Render clears the previous frame and draws it again in full.
type Renderer struct {
	mu      sync.Mutex
	kind    region.Kind
	viewer  uuid.UUID
	multi   bool
	tess    tessellate.Func
	backend Backend
	logger  Logger

	ids   []PrimitiveID
	lines []geom.Line
}

func (r *Renderer) Kind() region.Kind { return r.kind }
func (r *Renderer) Viewer() uuid.UUID { return r.viewer }
func (r *Renderer) Multi() bool       { return r.multi }

// PrimitiveCount is the number of primitives currently live on the backend.
func (r *Renderer) PrimitiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// Lines returns a copy of the current frame.
func (r *Renderer) Lines() []geom.Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]geom.Line(nil), r.lines...)
}

// Render replaces the current frame with a tessellation of reg. The region is
// copied first, so it may be mutated concurrently. On failure the previous
// frame is put back as far as the backend allows.
func (r *Renderer) Render(reg region.Region, snap settings.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.tessellate(reg, snap)
	if err != nil {
		return err
	}

	prev := r.lines
	r.clearLocked()
	if err := r.submitLocked(next); err != nil {
		r.clearLocked()
		if rerr := r.submitLocked(prev); rerr != nil {
			r.logger.Warnf("%s renderer for %s: restore previous frame: %v", r.kind, r.viewer, rerr)
		}
		return fmt.Errorf("render %s: %w", r.kind, err)
	}
	return nil
}

func (r *Renderer) tessellate(reg region.Region, snap settings.Snapshot) (lines []geom.Line, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s: %v", ErrRenderPanic, r.kind, p)
		}
	}()
	return r.tess(reg.Clone(), snap, r.multi)
}

func (r *Renderer) submitLocked(lines []geom.Line) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: backend: %v", ErrRenderPanic, p)
		}
	}()
	for _, l := range lines {
		id, err := r.backend.Spawn(r.viewer, l)
		if err != nil {
			return err
		}
		r.ids = append(r.ids, id)
		r.lines = append(r.lines, l)
	}
	return nil
}

// Clear removes every primitive this renderer spawned. Removal failures are
// logged and the primitive is forgotten.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
}

func (r *Renderer) clearLocked() {
	for _, id := range r.ids {
		if err := r.backend.Remove(r.viewer, id); err != nil {
			r.logger.Warnf("%s renderer for %s: remove primitive %d: %v", r.kind, r.viewer, id, err)
		}
	}
	r.ids = nil
	r.lines = nil
}
