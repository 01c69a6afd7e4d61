package region

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
)

// Cylinder is an elliptic cylinder standing on the Y axis.
type Cylinder struct {
	base
	center           *geom.Point3
	radiusX, radiusZ float64
	minY, maxY       int
}

func NewCylinder(owner uuid.UUID) *Cylinder {
	return &Cylinder{base: base{owner: owner}}
}

func (c *Cylinder) Kind() Kind { return KindCylinder }

func (c *Cylinder) SetCenter(x, y, z int) {
	c.mu.Lock()
	c.center = &geom.Point3{float64(x), float64(y), float64(z)}
	c.mu.Unlock()
}

func (c *Cylinder) SetRadius(x, z float64) {
	c.mu.Lock()
	c.radiusX, c.radiusZ = x, z
	c.mu.Unlock()
}

func (c *Cylinder) SetMinMax(minY, maxY int) {
	c.mu.Lock()
	c.minY, c.maxY = minY, maxY
	c.mu.Unlock()
}

func (c *Cylinder) Center() (geom.Point3, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deref(c.center)
}

// Radii returns the X and Z radii.
func (c *Cylinder) Radii() (x, z float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.radiusX, c.radiusZ
}

func (c *Cylinder) RadiusX() float64 {
	x, _ := c.Radii()
	return x
}

func (c *Cylinder) RadiusZ() float64 {
	_, z := c.Radii()
	return z
}

// Extent returns the vertical range.
func (c *Cylinder) Extent() (minY, maxY int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minY, c.maxY
}

func (c *Cylinder) MinY() int {
	lo, _ := c.Extent()
	return lo
}

func (c *Cylinder) MaxY() int {
	_, hi := c.Extent()
	return hi
}

func (c *Cylinder) Defined() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defined()
}

func (c *Cylinder) defined() bool {
	return c.center != nil && c.radiusX > 0 && c.radiusZ > 0 && c.maxY > c.minY
}

func (c *Cylinder) Bounds() (geom.BoundingBox, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.defined() {
		return geom.BoundingBox{}, false
	}
	ctr := *c.center
	return geom.NewBoundingBox(
		geom.Point3{ctr.X() - c.radiusX, float64(c.minY), ctr.Z() - c.radiusZ},
		geom.Point3{ctr.X() + c.radiusX, float64(c.maxY), ctr.Z() + c.radiusZ},
	), true
}

func (c *Cylinder) Info() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("Cylinder Region:\n")
	fmt.Fprintf(&sb, "  Center: %s\n", formatPoint(c.center))
	fmt.Fprintf(&sb, "  Radius X: %g\n", c.radiusX)
	fmt.Fprintf(&sb, "  Radius Z: %g\n", c.radiusZ)
	fmt.Fprintf(&sb, "  Min Y: %d\n", c.minY)
	fmt.Fprintf(&sb, "  Max Y: %d\n", c.maxY)
	if c.defined() {
		height := c.maxY - c.minY
		volume := math.Pi * c.radiusX * c.radiusZ * float64(height)
		fmt.Fprintf(&sb, "  Height: %d blocks\n", height)
		fmt.Fprintf(&sb, "  Approximate volume: %d blocks", int64(volume))
	}
	return sb.String()
}

func (c *Cylinder) Clone() Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &Cylinder{
		center:  clonePoint(c.center),
		radiusX: c.radiusX,
		radiusZ: c.radiusZ,
		minY:    c.minY,
		maxY:    c.maxY,
	}
	c.copyTo(&out.base)
	return out
}
