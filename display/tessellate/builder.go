// Package tessellate turns regions into wireframe line segments. Every
// function is pure and its output order is deterministic.
package tessellate

import (
	"math"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
	"github.com/gekko3d/regionviz/display/region"
)

const (
	// markerPadding pushes point markers just outside the block they mark.
	markerPadding = 0.03
	// skipThreshold drops grid lines this close to the far boundary.
	skipThreshold = 0.25
	minSpacing    = 1.0

	// minFixedSpacing bounds an explicit region grid spacing from below.
	minFixedSpacing = 0.0625
)

type builder struct {
	lines []geom.Line
}

func (b *builder) line(start, end geom.Point3, m material.Material, thickness float32) {
	b.lines = append(b.lines, geom.Line{
		Start:     geom.Vec3(start.X(), start.Y(), start.Z()),
		End:       geom.Vec3(end.X(), end.Y(), end.Z()),
		Material:  m,
		Thickness: thickness,
	})
}

// frame emits the 12 edges of the box [lo, hi].
func (b *builder) frame(lo, hi geom.Point3, m material.Material, thickness float32) {
	v000 := geom.Point3{lo.X(), lo.Y(), lo.Z()}
	v001 := geom.Point3{lo.X(), lo.Y(), hi.Z()}
	v010 := geom.Point3{lo.X(), hi.Y(), lo.Z()}
	v011 := geom.Point3{lo.X(), hi.Y(), hi.Z()}
	v100 := geom.Point3{hi.X(), lo.Y(), lo.Z()}
	v101 := geom.Point3{hi.X(), lo.Y(), hi.Z()}
	v110 := geom.Point3{hi.X(), hi.Y(), lo.Z()}
	v111 := geom.Point3{hi.X(), hi.Y(), hi.Z()}

	// bottom
	b.line(v000, v001, m, thickness)
	b.line(v000, v100, m, thickness)
	b.line(v001, v101, m, thickness)
	b.line(v100, v101, m, thickness)
	// top
	b.line(v010, v011, m, thickness)
	b.line(v010, v110, m, thickness)
	b.line(v011, v111, m, thickness)
	b.line(v110, v111, m, thickness)
	// verticals
	b.line(v000, v010, m, thickness)
	b.line(v001, v011, m, thickness)
	b.line(v100, v110, m, thickness)
	b.line(v101, v111, m, thickness)
}

// cube emits a frame of edge length size centered on c.
func (b *builder) cube(c geom.Point3, size float64, m material.Material, thickness float32) {
	h := size / 2
	half := geom.Point3{h, h, h}
	b.frame(c.Sub(half), c.Add(half), m, thickness)
}

// pointMarker frames the block cell whose minimum corner is p.
func (b *builder) pointMarker(p geom.Point3, m material.Material, thickness float32) {
	pad := geom.Point3{markerPadding, markerPadding, markerPadding}
	b.frame(p.Sub(pad), p.Add(geom.Point3{1, 1, 1}).Add(pad), m, thickness)
}

// loop closes the polyline through pts.
func (b *builder) loop(pts []geom.Point3, m material.Material, thickness float32) {
	n := len(pts)
	for i := 0; i < n; i++ {
		b.line(pts[i], pts[(i+1)%n], m, thickness)
	}
}

// palette resolves role materials, preferring the region's own color
// overrides when it belongs to a multi-selection.
type palette struct {
	colors *region.ColorOverrides
	multi  bool
}

func newPalette(r region.Region, multi bool) palette {
	return palette{colors: r.Colors(), multi: multi}
}

func (p palette) pick(slot int, fallback material.Material) material.Material {
	if !p.multi || p.colors == nil {
		return fallback
	}
	if m, ok := p.colors.Get(slot); ok {
		return m
	}
	return fallback
}

// Marker roles ride on override slots 2 and 3.
const (
	slotLine    = region.SlotPrimary
	slotVertex  = region.SlotGrid
	slotVertex0 = region.SlotBackground
)

func center(p geom.Point3) geom.Point3 {
	return p.Add(geom.Point3{0.5, 0.5, 0.5})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
