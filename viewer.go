package regionviz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
	"github.com/google/uuid"
)

var ErrUnknownShape = errors.New("unknown region shape")

// Viewer is one recipient's selection state and appearance settings. Safe for
// concurrent use.
type Viewer struct {
	id      uuid.UUID
	profile *settings.Profile

	mu        sync.RWMutex
	enabled   bool
	selection region.Region
	multi     map[uuid.UUID]region.Region
	currentID uuid.UUID
}

// NewViewer returns a viewer with rendering enabled and no selection. A nil
// server uses the built-in defaults.
func NewViewer(id uuid.UUID, server *settings.Server) *Viewer {
	return &Viewer{
		id:      id,
		profile: settings.NewProfile(server),
		enabled: true,
		multi:   make(map[uuid.UUID]region.Region),
	}
}

func (v *Viewer) ID() uuid.UUID               { return v.id }
func (v *Viewer) Settings() *settings.Profile { return v.profile }

func (v *Viewer) RenderingEnabled() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.enabled
}

func (v *Viewer) SetRenderingEnabled(enabled bool) {
	v.mu.Lock()
	v.enabled = enabled
	v.mu.Unlock()
}

// Selection returns the main selection, or nil.
func (v *Viewer) Selection() region.Region {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selection
}

// SetSelection replaces the main selection; nil clears it.
func (v *Viewer) SetSelection(r region.Region) {
	v.mu.Lock()
	v.selection = r
	v.mu.Unlock()
}

// SetMultiSelection stores r under id; nil removes the slot.
func (v *Viewer) SetMultiSelection(id uuid.UUID, r region.Region) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if r == nil {
		delete(v.multi, id)
		return
	}
	v.multi[id] = r
}

// MultiSelections returns a copy of the multi-selection slots.
func (v *Viewer) MultiSelections() map[uuid.UUID]region.Region {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[uuid.UUID]region.Region, len(v.multi))
	for id, r := range v.multi {
		out[id] = r
	}
	return out
}

// SetCurrentMultiID marks the slot being edited; uuid.Nil means none.
func (v *Viewer) SetCurrentMultiID(id uuid.UUID) {
	v.mu.Lock()
	v.currentID = id
	v.mu.Unlock()
}

func (v *Viewer) CurrentMultiID() uuid.UUID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.currentID
}

// CurrentMultiRegion returns the region in the slot being edited, or nil.
func (v *Viewer) CurrentMultiRegion() region.Region {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.currentID == uuid.Nil {
		return nil
	}
	return v.multi[v.currentID]
}

// ClearRegions drops every multi-selection and the current slot marker, and
// also the main selection unless multiOnly is set.
func (v *Viewer) ClearRegions(multiOnly bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !multiOnly {
		v.selection = nil
	}
	clear(v.multi)
	v.currentID = uuid.Nil
}

// CreateRegion returns a new, empty region of the shape named by key, owned
// by this viewer. It is not stored.
func (v *Viewer) CreateRegion(key string) (region.Region, error) {
	kind, ok := region.ParseKind(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, key)
	}
	return region.New(kind, v.id)
}
