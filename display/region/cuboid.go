package region

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
)

// Cuboid is a box given by two opposite corner blocks.
type Cuboid struct {
	base
	p1, p2 *geom.Point3
}

func NewCuboid(owner uuid.UUID) *Cuboid {
	return &Cuboid{base: base{owner: owner}}
}

func (c *Cuboid) Kind() Kind { return KindCuboid }

// SetPoint sets corner 0 or 1.
func (c *Cuboid) SetPoint(id int, x, y, z float64) error {
	p := geom.Point3{x, y, z}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch id {
	case 0:
		c.p1 = &p
	case 1:
		c.p2 = &p
	default:
		return fmt.Errorf("%w: cuboid corner %d", ErrPointID, id)
	}
	return nil
}

func (c *Cuboid) Point1() (geom.Point3, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deref(c.p1)
}

func (c *Cuboid) Point2() (geom.Point3, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deref(c.p2)
}

func (c *Cuboid) Defined() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defined()
}

func (c *Cuboid) defined() bool { return c.p1 != nil && c.p2 != nil }

// Bounds is the box between the two corners, without the extra block the
// renderer adds to enclose them.
func (c *Cuboid) Bounds() (geom.BoundingBox, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bounds()
}

func (c *Cuboid) bounds() (geom.BoundingBox, bool) {
	if !c.defined() {
		return geom.BoundingBox{}, false
	}
	return geom.NewBoundingBox(*c.p1, *c.p2), true
}

// Volume is the number of selected blocks; both corners count.
func (c *Cuboid) Volume() float64 {
	box, ok := c.Bounds()
	if !ok {
		return 0
	}
	return box.BlockVolume()
}

// Dimensions returns corner-to-corner extents.
func (c *Cuboid) Dimensions() (w, h, l int) {
	box, ok := c.Bounds()
	if !ok {
		return 0, 0, 0
	}
	return int(box.Width()), int(box.Height()), int(box.Length())
}

func (c *Cuboid) Info() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("Cuboid Region:\n")
	fmt.Fprintf(&sb, "  Point 1: %s\n", formatPoint(c.p1))
	fmt.Fprintf(&sb, "  Point 2: %s\n", formatPoint(c.p2))
	if box, ok := c.bounds(); ok {
		fmt.Fprintf(&sb, "  Volume: %d blocks\n", int64(box.BlockVolume()))
		fmt.Fprintf(&sb, "  Dimensions: %d x %d x %d", int(box.Width()), int(box.Height()), int(box.Length()))
	}
	return sb.String()
}

func (c *Cuboid) Clone() Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &Cuboid{p1: clonePoint(c.p1), p2: clonePoint(c.p2)}
	c.copyTo(&out.base)
	return out
}

func deref(p *geom.Point3) (geom.Point3, bool) {
	if p == nil {
		return geom.Point3{}, false
	}
	return *p, true
}
