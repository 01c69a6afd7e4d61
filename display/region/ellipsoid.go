package region

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
)

type Ellipsoid struct {
	base
	center *geom.Point3
	radii  *geom.Point3
}

func NewEllipsoid(owner uuid.UUID) *Ellipsoid {
	return &Ellipsoid{base: base{owner: owner}}
}

func (e *Ellipsoid) Kind() Kind { return KindEllipsoid }

func (e *Ellipsoid) SetCenter(x, y, z int) {
	e.mu.Lock()
	e.center = &geom.Point3{float64(x), float64(y), float64(z)}
	e.mu.Unlock()
}

// SetRadii sets the semi-axes along X, Y and Z.
func (e *Ellipsoid) SetRadii(x, y, z float64) {
	e.mu.Lock()
	e.radii = &geom.Point3{x, y, z}
	e.mu.Unlock()
}

func (e *Ellipsoid) Center() (geom.Point3, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return deref(e.center)
}

func (e *Ellipsoid) Radii() (geom.Point3, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return deref(e.radii)
}

func (e *Ellipsoid) Defined() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.defined()
}

func (e *Ellipsoid) defined() bool { return e.center != nil && e.radii != nil }

func (e *Ellipsoid) Bounds() (geom.BoundingBox, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.defined() {
		return geom.BoundingBox{}, false
	}
	return geom.NewBoundingBox(e.center.Sub(*e.radii), e.center.Add(*e.radii)), true
}

func (e *Ellipsoid) Info() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("Ellipsoid Region:\n")
	fmt.Fprintf(&sb, "  Center: %s\n", formatPoint(e.center))
	fmt.Fprintf(&sb, "  Radii: %s\n", formatPoint(e.radii))
	if e.defined() {
		r := *e.radii
		volume := 4.0 / 3.0 * math.Pi * r.X() * r.Y() * r.Z()
		fmt.Fprintf(&sb, "  Approximate volume: %d blocks", int64(volume))
	}
	return sb.String()
}

func (e *Ellipsoid) Clone() Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := &Ellipsoid{center: clonePoint(e.center), radii: clonePoint(e.radii)}
	e.copyTo(&out.base)
	return out
}
