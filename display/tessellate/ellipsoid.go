package tessellate

import (
	"math"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

// thinRadius is the radius below which a plane family collapses to its
// center-line ellipse.
const thinRadius = 0.5

// plane selects the two axes an ellipse is drawn in and the axis it is
// offset along.
type plane int

const (
	planeXZ plane = iota // offset along Y
	planeYZ              // offset along X
	planeXY              // offset along Z
)

// axes returns (first radius, second radius, orthogonal radius).
func (p plane) axes(r geom.Point3) (float64, float64, float64) {
	switch p {
	case planeYZ:
		return r.Y(), r.Z(), r.X()
	case planeXY:
		return r.X(), r.Y(), r.Z()
	default:
		return r.X(), r.Z(), r.Y()
	}
}

func (p plane) point(c geom.Point3, u, v, off float64) geom.Point3 {
	switch p {
	case planeYZ:
		return geom.Point3{c.X() + off, c.Y() + u, c.Z() + v}
	case planeXY:
		return geom.Point3{c.X() + u, c.Y() + v, c.Z() + off}
	default:
		return geom.Point3{c.X() + u, c.Y() + off, c.Z() + v}
	}
}

type ellipsoidStyle struct {
	line, centerLine   material.Material
	lineT, centerLineT float32
	radiusDiv          float64
	maxSpacing         float64
	segments           segmentPolicy
}

// Ellipsoid draws a center cube and three families of stepped ellipses, one
// per orthogonal plane, each with a distinct center-line ellipse.
func Ellipsoid(e *region.Ellipsoid, snap settings.Snapshot, multi bool) []geom.Line {
	if !e.Defined() {
		return nil
	}
	ctr, _ := e.Center()
	radii, _ := e.Radii()
	radii = geom.Point3{math.Max(radii.X(), 0), math.Max(radii.Y(), 0), math.Max(radii.Z(), 0)}

	pal := newPalette(e, multi)
	st := ellipsoidStyle{
		line:        pal.pick(slotLine, snap.Material(settings.EllipsoidLineMaterial)),
		centerLine:  snap.Material(settings.EllipsoidCenterLineMaterial),
		lineT:       snap.Float32(settings.EllipsoidLineThickness),
		centerLineT: snap.Float32(settings.EllipsoidCenterLineThick),
		radiusDiv:   snap.Float(settings.EllipsoidRadiusGridDivision),
		maxSpacing:  snap.Float(settings.EllipsoidMaxGridSpacing),
		segments: segmentPolicy{
			min:          snap.Int(settings.EllipsoidMinSegments),
			max:          snap.Int(settings.EllipsoidMaxSegments),
			targetLength: snap.Float(settings.EllipsoidTargetSegmentLen),
			scaleFactor:  snap.Float(settings.EllipsoidSqrtScaleFactor),
		},
	}

	c := center(ctr)
	var b builder
	b.cube(c, snap.Float(settings.EllipsoidCenterMarkerSize),
		pal.pick(slotVertex, snap.Material(settings.EllipsoidCenterMaterial)),
		snap.Float32(settings.EllipsoidCenterThickness))

	for _, p := range []plane{planeXZ, planeYZ, planeXY} {
		planeFamily(&b, st, p, c, radii)
	}
	return b.lines
}

func planeFamily(b *builder, st ellipsoidStyle, p plane, c, radii geom.Point3) {
	_, _, ro := p.axes(radii)
	if ro >= thinRadius {
		step := gridStep(ro, st.radiusDiv, st.maxSpacing)
		n := int(math.Floor(ro))
		for off := -n; off < n; off += step {
			if off == 0 {
				continue
			}
			ellipse(b, st.segments, p, c, radii, float64(off), st.line, st.lineT)
		}
	}
	ellipse(b, st.segments, p, c, radii, 0, st.centerLine, st.centerLineT)
}

// ellipse draws the slice of the ellipsoid at off along the plane's normal,
// shrinking the in-plane radii by sqrt(1-(off/r)^2).
func ellipse(b *builder, sp segmentPolicy, p plane, c, radii geom.Point3, off float64, m material.Material, t float32) {
	r1, r2, ro := p.axes(radii)
	scale := 1.0
	if ro >= 0.01 {
		scale = math.Sqrt(math.Max(0, 1-math.Pow(off/ro, 2)))
	}
	s1, s2 := r1*scale, r2*scale

	n := ellipseSegments(s1, s2, sp)
	pts := make([]geom.Point3, n)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = p.point(c, s1*math.Cos(a), s2*math.Sin(a), off)
	}
	b.loop(pts, m, t)
}
