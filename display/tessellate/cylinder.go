package tessellate

import (
	"math"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

const cylinderCenterSize = 1.03

type cylinderStyle struct {
	circle, grid, center, centerLine     material.Material
	circleT, gridT, centerT, centerLineT float32
	heightDiv, radiusDiv, maxSpacing     float64
	segments                             segmentPolicy
}

func newCylinderStyle(c *region.Cylinder, snap settings.Snapshot, multi bool) cylinderStyle {
	pal := newPalette(c, multi)
	return cylinderStyle{
		circle:      pal.pick(slotLine, snap.Material(settings.CylinderCircleMaterial)),
		grid:        snap.Material(settings.CylinderGridMaterial),
		center:      pal.pick(slotVertex, snap.Material(settings.CylinderCenterMaterial)),
		centerLine:  snap.Material(settings.CylinderCenterLineMaterial),
		circleT:     snap.Float32(settings.CylinderCircleThickness),
		gridT:       snap.Float32(settings.CylinderGridThickness),
		centerT:     snap.Float32(settings.CylinderCenterThickness),
		centerLineT: snap.Float32(settings.CylinderCenterLineThick),
		heightDiv:   snap.Float(settings.CylinderHeightGridDivision),
		radiusDiv:   snap.Float(settings.CylinderRadiusGridDivision),
		maxSpacing:  snap.Float(settings.CylinderMaxGridSpacing),
		segments: segmentPolicy{
			min:          snap.Int(settings.CylinderMinCircleSegments),
			max:          snap.Int(settings.CylinderMaxCircleSegments),
			targetLength: snap.Float(settings.CylinderTargetSegmentLen),
			scaleFactor:  snap.Float(settings.CylinderSqrtScaleFactor),
		},
	}
}

// offsetStyle picks the center-line look for the zero offset.
func (s cylinderStyle) offsetStyle(off int) (material.Material, float32) {
	if off == 0 {
		return s.centerLine, s.centerLineT
	}
	return s.grid, s.gridT
}

// Cylinder draws stepped elliptical layers, distinct center-line layers at
// the center height, vertical chord lines and a center cube. Zero radii
// degrade to a flat grid or just the cube.
func Cylinder(c *region.Cylinder, snap settings.Snapshot, multi bool) []geom.Line {
	ctr, ok := c.Center()
	if !ok {
		return nil
	}

	st := newCylinderStyle(c, snap, multi)
	rx, rz := math.Max(c.RadiusX(), 0), math.Max(c.RadiusZ(), 0)
	minY, maxY := c.MinY(), c.MaxY()
	cx, cz := ctr.X()+0.5, ctr.Z()+0.5
	var b builder

	if rx == 0 && rz == 0 {
		b.cube(center(ctr), cylinderCenterSize, st.center, st.centerT)
		return b.lines
	}

	stepY := gridStep(float64(maxY-minY+1), st.heightDiv, st.maxSpacing)

	if rx == 0 || rz == 0 {
		flatGrid(&b, st, cx, cz, rx, rz, minY, maxY, stepY)
		b.cube(center(ctr), cylinderCenterSize, st.center, st.centerT)
		return b.lines
	}

	cy := int(math.Floor(ctr.Y()))
	for y := minY; y <= maxY+1; y += stepY {
		if y == cy || y == cy+1 {
			continue
		}
		circle(&b, cx, float64(y), cz, rx, rz, st.segments, st.circle, st.circleT)
	}
	if (maxY+1-minY)%stepY != 0 {
		circle(&b, cx, float64(maxY+1), cz, rx, rz, st.segments, st.circle, st.circleT)
	}

	circle(&b, cx, float64(cy), cz, rx, rz, st.segments, st.centerLine, st.centerLineT)
	circle(&b, cx, float64(cy+1), cz, rx, rz, st.segments, st.centerLine, st.centerLineT)

	chordGrid(&b, st, cx, cz, rx, rz, float64(minY), float64(maxY+1))

	b.cube(center(ctr), cylinderCenterSize, st.center, st.centerT)
	return b.lines
}

func circle(b *builder, cx, y, cz, rx, rz float64, p segmentPolicy, m material.Material, t float32) {
	n := circleSegments(rx, rz, p)
	pts := make([]geom.Point3, n)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = geom.Point3{cx + rx*math.Cos(a), y, cz + rz*math.Sin(a)}
	}
	b.loop(pts, m, t)
}

// flatGrid draws a cylinder with one zero radius as a rectangle in the
// plane of the other axis.
func flatGrid(b *builder, st cylinderStyle, cx, cz, rx, rz float64, minY, maxY, stepY int) {
	top := float64(maxY + 1)
	if rx == 0 {
		for y := minY; y <= maxY+1; y += stepY {
			b.line(geom.Point3{cx, float64(y), cz - rz}, geom.Point3{cx, float64(y), cz + rz}, st.grid, st.gridT)
		}
		n := int(math.Ceil(rz))
		for dz := -n; dz <= n; dz++ {
			m, t := st.offsetStyle(dz)
			z := cz + float64(dz)
			b.line(geom.Point3{cx, float64(minY), z}, geom.Point3{cx, top, z}, m, t)
		}
		return
	}

	for y := minY; y <= maxY+1; y += stepY {
		b.line(geom.Point3{cx - rx, float64(y), cz}, geom.Point3{cx + rx, float64(y), cz}, st.grid, st.gridT)
	}
	n := int(math.Ceil(rx))
	for dx := -n; dx <= n; dx++ {
		m, t := st.offsetStyle(dx)
		x := cx + float64(dx)
		b.line(geom.Point3{x, float64(minY), cz}, geom.Point3{x, top, cz}, m, t)
	}
}

// chordGrid draws vertical lines where stepped X and Z offsets meet the
// ellipse outline.
func chordGrid(b *builder, st cylinderStyle, cx, cz, rx, rz, y1, y2 float64) {
	xStep := gridStep(rx, st.radiusDiv, st.maxSpacing)
	zStep := gridStep(rz, st.radiusDiv, st.maxSpacing)

	nx := int(math.Ceil(rx))
	for dx := -nx; dx <= nx; dx += xStep {
		ratio := float64(dx) / rx
		if math.Abs(ratio) > 1 {
			continue
		}
		m, t := st.offsetStyle(dx)
		x := cx + float64(dx)
		oz := rz * math.Cos(math.Asin(ratio))
		b.line(geom.Point3{x, y1, cz - oz}, geom.Point3{x, y2, cz - oz}, m, t)
		b.line(geom.Point3{x, y1, cz + oz}, geom.Point3{x, y2, cz + oz}, m, t)
	}

	nz := int(math.Ceil(rz))
	for dz := -nz; dz <= nz; dz += zStep {
		ratio := float64(dz) / rz
		if math.Abs(ratio) > 1 {
			continue
		}
		m, t := st.offsetStyle(dz)
		z := cz + float64(dz)
		ox := rx * math.Sin(math.Acos(ratio))
		b.line(geom.Point3{cx - ox, y1, z}, geom.Point3{cx - ox, y2, z}, m, t)
		b.line(geom.Point3{cx + ox, y1, z}, geom.Point3{cx + ox, y2, z}, m, t)
	}
}
