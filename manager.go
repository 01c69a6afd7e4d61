package regionviz

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// viewerRenderers is the live renderer set of one viewer. mu serializes
// every update for that viewer.
type viewerRenderers struct {
	mu      sync.Mutex
	retired bool
	main    *Renderer
	multi   map[uuid.UUID]*Renderer
}

func (vr *viewerRenderers) count() int {
	n := len(vr.multi)
	if vr.main != nil {
		n++
	}
	return n
}

// Manager keeps at most one renderer per viewer slot in step with each
// viewer's selections. Updates for different viewers may run concurrently.
type Manager struct {
	backend Backend
	logger  Logger
	server  *settings.Server
	workers int

	mu      sync.Mutex
	viewers map[uuid.UUID]*viewerRenderers
	closed  atomic.Bool
}

// NewManager is NewManagerBuilder().UseBackend(backend).Build().
func NewManager(backend Backend) *Manager {
	return NewManagerBuilder().UseBackend(backend).Build()
}

func (m *Manager) Logger() Logger           { return m.logger }
func (m *Manager) Server() *settings.Server { return m.server }

// NewViewer returns a viewer whose settings fall back to the manager's
// server defaults.
func (m *Manager) NewViewer(id uuid.UUID) *Viewer {
	return NewViewer(id, m.server)
}

// lockViewer returns the viewer's locked renderer set, creating it if
// needed. The caller must unlock it.
func (m *Manager) lockViewer(id uuid.UUID) *viewerRenderers {
	for {
		m.mu.Lock()
		vr, ok := m.viewers[id]
		if !ok {
			vr = &viewerRenderers{multi: make(map[uuid.UUID]*Renderer)}
			m.viewers[id] = vr
		}
		m.mu.Unlock()

		vr.mu.Lock()
		if !vr.retired {
			return vr
		}
		vr.mu.Unlock()
	}
}

func (m *Manager) lookup(id uuid.UUID) *viewerRenderers {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewers[id]
}

// Update brings the viewer's renderers in line with its current selections
// and draws them. A failing slot is logged and keeps its previous frame.
func (m *Manager) Update(v *Viewer) {
	if v == nil {
		return
	}
	if m.closed.Load() {
		m.logger.Warnf("update for %s after shutdown ignored", v.ID())
		return
	}

	vr := m.lockViewer(v.ID())
	defer vr.mu.Unlock()

	// Shutdown may have started while we waited for the lock.
	if m.closed.Load() {
		m.retireLocked(v.ID(), vr)
		return
	}
	if !v.RenderingEnabled() {
		m.retireLocked(v.ID(), vr)
		return
	}

	snap := v.Settings().Snapshot()
	vr.main = m.reconcile(v.ID(), vr.main, v.Selection(), snap, false)

	slots := v.MultiSelections()
	for id, r := range vr.multi {
		if _, ok := slots[id]; !ok {
			r.Clear()
			delete(vr.multi, id)
			m.logger.Debugf("retired multi renderer %s for %s", id, v.ID())
		}
	}
	for _, id := range sortedIDs(slots) {
		next := m.reconcile(v.ID(), vr.multi[id], slots[id], snap, true)
		if next == nil {
			delete(vr.multi, id)
			continue
		}
		vr.multi[id] = next
	}

	if vr.count() == 0 {
		m.retireLocked(v.ID(), vr)
	}
}

// reconcile applies one slot transition and returns the slot's renderer
// afterwards, or nil when the slot is empty.
func (m *Manager) reconcile(viewer uuid.UUID, cur *Renderer, reg region.Region, snap settings.Snapshot, multi bool) *Renderer {
	if reg == nil {
		if cur != nil {
			cur.Clear()
			m.logger.Debugf("retired %s renderer for %s", cur.Kind(), viewer)
		}
		return nil
	}

	if cur != nil && cur.Kind() != reg.Kind() {
		cur.Clear()
		m.logger.Debugf("replacing %s renderer with %s for %s", cur.Kind(), reg.Kind(), viewer)
		cur = nil
	}

	if cur == nil {
		r, err := newRenderer(reg.Kind(), viewer, multi, m.backend, m.logger)
		if err != nil {
			m.logger.Warnf("viewer %s: %v", viewer, err)
			return nil
		}
		m.logger.Debugf("created %s renderer for %s (multi=%t)", reg.Kind(), viewer, multi)
		cur = r
	}

	if err := cur.Render(reg, snap); err != nil {
		m.logger.Errorf("viewer %s: %v", viewer, err)
	}
	return cur
}

// retireLocked clears every renderer of vr and forgets the viewer. vr.mu
// must be held.
func (m *Manager) retireLocked(id uuid.UUID, vr *viewerRenderers) {
	if vr.main != nil {
		vr.main.Clear()
		vr.main = nil
	}
	for slot, r := range vr.multi {
		r.Clear()
		delete(vr.multi, slot)
	}
	vr.retired = true

	m.mu.Lock()
	if m.viewers[id] == vr {
		delete(m.viewers, id)
	}
	m.mu.Unlock()
}

// Clear retires every renderer of the viewer.
func (m *Manager) Clear(id uuid.UUID) {
	vr := m.lookup(id)
	if vr == nil {
		return
	}
	vr.mu.Lock()
	defer vr.mu.Unlock()
	if !vr.retired {
		m.retireLocked(id, vr)
	}
}

// ClearAll retires every renderer of every viewer. Calling it with nothing
// live is a no-op.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.viewers))
	for id := range m.viewers {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.Clear(id)
	}
}

// Refresh clears the viewer and draws it again from scratch.
func (m *Manager) Refresh(v *Viewer) {
	if v == nil {
		return
	}
	m.Clear(v.ID())
	m.Update(v)
	m.logger.Debugf("refreshed renderers for %s", v.ID())
}

// UpdateAll updates viewers concurrently, at most Workers at a time. It stops
// starting new updates once ctx is done and returns ctx's error.
func (m *Manager) UpdateAll(ctx context.Context, viewers []*Viewer) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for _, v := range viewers {
		if v == nil {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.Update(v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// HasActive reports whether the viewer has any live renderer.
func (m *Manager) HasActive(id uuid.UUID) bool {
	vr := m.lookup(id)
	if vr == nil {
		return false
	}
	vr.mu.Lock()
	defer vr.mu.Unlock()
	return vr.count() > 0
}

// ActiveCount is the number of live renderers across all viewers.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	sets := make([]*viewerRenderers, 0, len(m.viewers))
	for _, vr := range m.viewers {
		sets = append(sets, vr)
	}
	m.mu.Unlock()

	n := 0
	for _, vr := range sets {
		vr.mu.Lock()
		n += vr.count()
		vr.mu.Unlock()
	}
	return n
}

// MainRenderer returns the viewer's main-selection renderer.
func (m *Manager) MainRenderer(id uuid.UUID) (*Renderer, bool) {
	vr := m.lookup(id)
	if vr == nil {
		return nil, false
	}
	vr.mu.Lock()
	defer vr.mu.Unlock()
	return vr.main, vr.main != nil
}

// MultiRenderer returns the renderer for one multi-selection slot.
func (m *Manager) MultiRenderer(id, slot uuid.UUID) (*Renderer, bool) {
	vr := m.lookup(id)
	if vr == nil {
		return nil, false
	}
	vr.mu.Lock()
	defer vr.mu.Unlock()
	r, ok := vr.multi[slot]
	return r, ok
}

// Shutdown clears everything; later updates are ignored.
func (m *Manager) Shutdown() {
	m.logger.Infof("shutting down render manager (%d active)", m.ActiveCount())
	m.closed.Store(true)
	m.ClearAll()
}

func sortedIDs(slots map[uuid.UUID]region.Region) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(slots))
	for id := range slots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	return ids
}
