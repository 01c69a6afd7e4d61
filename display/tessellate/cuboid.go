package tessellate

import (
	"math"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

// Cuboid draws a marker for each known corner, then, once both corners are
// known, the block-enclosing box and a grid on each of its six faces.
func Cuboid(c *region.Cuboid, snap settings.Snapshot, multi bool) []geom.Line {
	p1, ok1 := c.Point1()
	p2, ok2 := c.Point2()
	if !ok1 && !ok2 {
		return nil
	}

	pal := newPalette(c, multi)
	edgeT := snap.Float32(settings.CuboidEdgeThickness)
	var b builder

	if ok1 {
		b.pointMarker(p1, pal.pick(slotVertex, snap.Material(settings.CuboidPoint1Material)), edgeT)
	}
	if ok2 {
		b.pointMarker(p2, pal.pick(slotVertex0, snap.Material(settings.CuboidPoint2Material)), edgeT)
	}
	if !ok1 || !ok2 {
		return b.lines
	}

	box := geom.NewBoundingBox(p1, p2)
	box = box.Expand(1, 1, 1)
	lo, hi := box.Min, box.Max
	b.frame(lo, hi, pal.pick(slotLine, snap.Material(settings.CuboidEdgeMaterial)), edgeT)

	g := faceGrid{
		b:         &b,
		material:  snap.Material(settings.CuboidGridMaterial),
		thickness: snap.Float32(settings.CuboidGridThickness),
	}
	size := hi.Sub(lo)
	if size.X() < minSpacing && size.Y() < minSpacing && size.Z() < minSpacing {
		return b.lines
	}

	var sp geom.Point3
	if fixed := c.GridSpacing(); fixed > 0 {
		s := math.Max(fixed, minFixedSpacing)
		sp = geom.Point3{s, s, s}
	} else {
		div := snap.Float(settings.CuboidHeightGridDivision)
		maxSp := snap.Float(settings.CuboidMaxGridSpacing)
		sp = geom.Point3{
			float64(gridStep(size.X(), div, maxSp)),
			float64(gridStep(size.Y(), div, maxSp)),
			float64(gridStep(size.Z(), div, maxSp)),
		}
	}

	// XZ faces at both Y extremes, XY at both Z, YZ at both X.
	for _, y := range []float64{lo.Y(), hi.Y()} {
		g.steps(lo.Z(), hi.Z(), sp.Z(), func(z float64) { g.line(lo.X(), y, z, hi.X(), y, z) })
		g.steps(lo.X(), hi.X(), sp.X(), func(x float64) { g.line(x, y, lo.Z(), x, y, hi.Z()) })
	}
	for _, z := range []float64{lo.Z(), hi.Z()} {
		g.steps(lo.Y(), hi.Y(), sp.Y(), func(y float64) { g.line(lo.X(), y, z, hi.X(), y, z) })
		g.steps(lo.X(), hi.X(), sp.X(), func(x float64) { g.line(x, lo.Y(), z, x, hi.Y(), z) })
	}
	for _, x := range []float64{lo.X(), hi.X()} {
		g.steps(lo.Z(), hi.Z(), sp.Z(), func(z float64) { g.line(x, lo.Y(), z, x, hi.Y(), z) })
		g.steps(lo.Y(), hi.Y(), sp.Y(), func(y float64) { g.line(x, y, lo.Z(), x, y, hi.Z()) })
	}
	return b.lines
}

type faceGrid struct {
	b         *builder
	material  material.Material
	thickness float32
}

func (g faceGrid) line(x1, y1, z1, x2, y2, z2 float64) {
	g.b.line(geom.Point3{x1, y1, z1}, geom.Point3{x2, y2, z2}, g.material, g.thickness)
}

// steps calls fn for every v in [from, to] by step, skipping values that
// crowd the far boundary.
func (g faceGrid) steps(from, to, step float64, fn func(v float64)) {
	for v := from; v <= to; v += step {
		if v > from && to-v < skipThreshold {
			continue
		}
		fn(v)
	}
}
