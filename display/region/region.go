// Package region models the five selection shapes. Each variant carries only
// the parameters that define it and exposes only the mutators that make sense
// for that shape.
package region

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
)

type Kind int

const (
	KindCuboid Kind = iota
	KindCylinder
	KindEllipsoid
	KindPolygon
	KindPolyhedron
)

var kindNames = map[Kind]string{
	KindCuboid:     "cuboid",
	KindCylinder:   "cylinder",
	KindEllipsoid:  "ellipsoid",
	KindPolygon:    "polygon2d",
	KindPolyhedron: "polyhedron",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a selection type key ("cuboid", "cylinder", "ellipsoid",
// "polygon2d" or "polygon", "polyhedron") to its Kind.
func ParseKind(key string) (Kind, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "polygon" {
		return KindPolygon, true
	}
	for k, n := range kindNames {
		if n == key {
			return k, true
		}
	}
	return 0, false
}

// Region is the capability set shared by every shape.
type Region interface {
	Kind() Kind
	// Owner is the viewer this region belongs to. It is a lookup key, not a
	// reference that keeps the viewer alive.
	Owner() uuid.UUID
	Defined() bool
	// Bounds returns the axis-aligned box of the defined geometry.
	Bounds() (geom.BoundingBox, bool)
	Colors() *ColorOverrides
	GridSpacing() float64
	SetGridSpacing(spacing float64)
	Info() string
	// Clone returns a deep copy taken under the region's lock, so the copy
	// never mixes state from before and after a concurrent mutation.
	Clone() Region
}

// New creates an empty region of the given kind.
func New(kind Kind, owner uuid.UUID) (Region, error) {
	switch kind {
	case KindCuboid:
		return NewCuboid(owner), nil
	case KindCylinder:
		return NewCylinder(owner), nil
	case KindEllipsoid:
		return NewEllipsoid(owner), nil
	case KindPolygon:
		return NewPolygon(owner), nil
	case KindPolyhedron:
		return NewPolyhedron(owner), nil
	}
	return nil, fmt.Errorf("region: unknown kind %v", kind)
}

// Color slots.
const (
	SlotPrimary = iota
	SlotSecondary
	SlotGrid
	SlotBackground
	slotCount
)

// ColorOverrides holds optional per-region materials for the four slots. Safe
// for concurrent use.
type ColorOverrides struct {
	mu    sync.RWMutex
	slots [slotCount]material.Material
}

// Set replaces all four slots. Empty entries clear the slot.
func (c *ColorOverrides) Set(m [4]material.Material) {
	c.mu.Lock()
	c.slots = m
	c.mu.Unlock()
}

// Get returns the override for slot, if one is set.
func (c *ColorOverrides) Get(slot int) (material.Material, bool) {
	if slot < 0 || slot >= slotCount {
		return "", false
	}
	c.mu.RLock()
	m := c.slots[slot]
	c.mu.RUnlock()
	return m, !m.IsZero()
}

func (c *ColorOverrides) Clear() {
	c.mu.Lock()
	c.slots = [slotCount]material.Material{}
	c.mu.Unlock()
}

func (c *ColorOverrides) all() [slotCount]material.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots
}

// base carries the fields every shape shares. mu guards the embedding
// variant's own fields as well; colors has its own lock.
type base struct {
	mu          sync.RWMutex
	owner       uuid.UUID
	colors      ColorOverrides
	gridSpacing float64
}

func (b *base) Owner() uuid.UUID        { return b.owner }
func (b *base) Colors() *ColorOverrides { return &b.colors }

func (b *base) GridSpacing() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gridSpacing
}

func (b *base) SetGridSpacing(spacing float64) {
	b.mu.Lock()
	b.gridSpacing = spacing
	b.mu.Unlock()
}

// copyTo fills dst with b's shared fields. b.mu must be held.
func (b *base) copyTo(dst *base) {
	dst.owner = b.owner
	dst.gridSpacing = b.gridSpacing
	dst.colors.slots = b.colors.all()
}

func clonePoint(p *geom.Point3) *geom.Point3 {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func formatPoint(p *geom.Point3) string {
	if p == nil {
		return "Not set"
	}
	return fmt.Sprintf("(%g, %g, %g)", p.X(), p.Y(), p.Z())
}
