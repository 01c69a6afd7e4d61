package region

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
)

// Polygon is a prism: a 2D outline on the XZ plane extruded from MinY to MaxY.
// Points arrive by index and may leave gaps until the outline is complete.
type Polygon struct {
	base
	points     []*geom.Point2
	minY, maxY int
}

func NewPolygon(owner uuid.UUID) *Polygon {
	return &Polygon{base: base{owner: owner}}
}

func (p *Polygon) Kind() Kind { return KindPolygon }

// SetPoint sets outline point id, growing the list as needed.
func (p *Polygon) SetPoint(id, x, z int) error {
	if id < 0 {
		return fmt.Errorf("%w: polygon point %d", ErrPointID, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.points) <= id {
		p.points = append(p.points, nil)
	}
	p.points[id] = &geom.Point2{float64(x), float64(z)}
	return nil
}

func (p *Polygon) SetMinMax(minY, maxY int) {
	p.mu.Lock()
	p.minY, p.maxY = minY, maxY
	p.mu.Unlock()
}

// Points returns the set outline points in order, skipping gaps.
func (p *Polygon) Points() []geom.Point2 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.setPoints()
}

func (p *Polygon) setPoints() []geom.Point2 {
	out := make([]geom.Point2, 0, len(p.points))
	for _, pt := range p.points {
		if pt != nil {
			out = append(out, *pt)
		}
	}
	return out
}

// Extent returns the vertical range.
func (p *Polygon) Extent() (minY, maxY int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.minY, p.maxY
}

func (p *Polygon) MinY() int {
	lo, _ := p.Extent()
	return lo
}

func (p *Polygon) MaxY() int {
	_, hi := p.Extent()
	return hi
}

func (p *Polygon) Defined() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, pt := range p.points {
		if pt != nil {
			return true
		}
	}
	return false
}

func (p *Polygon) Bounds() (geom.BoundingBox, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pts := p.setPoints()
	if len(pts) == 0 {
		return geom.BoundingBox{}, false
	}
	box := geom.NewBoundingBox(
		geom.Point3{pts[0].X(), float64(p.minY), pts[0].Y()},
		geom.Point3{pts[0].X(), float64(p.maxY), pts[0].Y()},
	)
	for _, pt := range pts[1:] {
		box = geom.NewBoundingBox(
			geom.Point3{min(box.Min.X(), pt.X()), box.Min.Y(), min(box.Min.Z(), pt.Y())},
			geom.Point3{max(box.Max.X(), pt.X()), box.Max.Y(), max(box.Max.Z(), pt.Y())},
		)
	}
	return box, true
}

func (p *Polygon) Info() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("Polygon Region:\n")
	fmt.Fprintf(&sb, "  Points: %d\n", len(p.setPoints()))
	fmt.Fprintf(&sb, "  Min Y: %d\n", p.minY)
	fmt.Fprintf(&sb, "  Max Y: %d", p.maxY)
	return sb.String()
}

func (p *Polygon) Clone() Region {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := &Polygon{
		points: make([]*geom.Point2, len(p.points)),
		minY:   p.minY,
		maxY:   p.maxY,
	}
	for i, pt := range p.points {
		if pt != nil {
			c := *pt
			out.points[i] = &c
		}
	}
	p.copyTo(&out.base)
	return out
}
