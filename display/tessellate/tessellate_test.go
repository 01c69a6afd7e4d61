package tessellate

import (
	"strings"
	"testing"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/material"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() settings.Snapshot {
	return settings.DefaultServer().Snapshot()
}

func countMaterial(lines []geom.Line, m material.Material) int {
	n := 0
	for _, l := range lines {
		if l.Material == m {
			n++
		}
	}
	return n
}

func hasEndpoint(lines []geom.Line, p geom.Vec) bool {
	for _, l := range lines {
		if l.Start == p || l.End == p {
			return true
		}
	}
	return false
}

func TestGridStep(t *testing.T) {
	assert.Equal(t, 10, gridStep(10, 0, -1))
	assert.Equal(t, 10, gridStep(10, -3, -1))
	assert.Equal(t, 1, gridStep(0.5, 4, -1))
	assert.Equal(t, 1, gridStep(-7, 4, -1))
	assert.Equal(t, 25, gridStep(100, 4, -1))
	assert.Equal(t, 5, gridStep(100, 4, 5))
	assert.Equal(t, 25, gridStep(100, 4, 0), "spacing below 1 cannot clamp")
}

func TestSegmentCountsStayInBounds(t *testing.T) {
	p := segmentPolicy{min: 16, max: 128, targetLength: 1, scaleFactor: 4}
	for _, r := range []float64{1e-12, 1e-3, 0.5, 1, 10, 100, 10000} {
		n := circleSegments(r, r, p)
		assert.GreaterOrEqual(t, n, 16, "circle r=%v", r)
		assert.LessOrEqual(t, n, 128, "circle r=%v", r)

		n = ellipseSegments(r, r/3, p)
		assert.GreaterOrEqual(t, n, 16, "ellipse r=%v", r)
		assert.LessOrEqual(t, n, 128, "ellipse r=%v", r)
	}
	assert.Equal(t, 16, circleSegments(1e-12, 1e-12, p))
	assert.Equal(t, 128, circleSegments(10000, 10000, p))
	assert.Equal(t, 16, ellipseSegments(0, 0, p))
}

func TestSegmentPolicyNormalizes(t *testing.T) {
	p := segmentPolicy{min: 0, max: -5, targetLength: 0, scaleFactor: 0}
	assert.Equal(t, 3, circleSegments(50, 50, p))

	p = segmentPolicy{min: 8, max: 64, targetLength: -1, scaleFactor: 1}
	assert.Equal(t, 18, circleSegments(100, 100, p), "radius estimate only: 8+sqrt(100)")
}

func TestCuboidFullBox(t *testing.T) {
	c := region.NewCuboid(uuid.New())
	c.SetPoint(0, 0, 0, 0)
	c.SetPoint(1, 2, 2, 2)

	lines := Cuboid(c, defaults(), false)

	assert.Equal(t, 12, countMaterial(lines, "RED_CONCRETE"), "box frame")
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"), "point1 marker")
	assert.Equal(t, 12, countMaterial(lines, "BLUE_CONCRETE"), "point2 marker")
	// 3 lines per direction, 2 directions, 6 faces; the line at 3 crowds the edge.
	assert.Equal(t, 36, countMaterial(lines, "GRAY_CONCRETE"))
	assert.Len(t, lines, 72)

	assert.True(t, hasEndpoint(lines, geom.Vec{3, 3, 3}), "box must enclose the far blocks")
	assert.True(t, hasEndpoint(lines, geom.Vec{-0.03, -0.03, -0.03}), "point1 marker padding")
	assert.Equal(t, 27.0, c.Volume())
}

func TestCuboidSinglePoint(t *testing.T) {
	c := region.NewCuboid(uuid.New())
	c.SetPoint(1, 5, 6, 7)

	lines := Cuboid(c, defaults(), false)
	require.Len(t, lines, 12)
	assert.Equal(t, 12, countMaterial(lines, "BLUE_CONCRETE"))

	assert.Empty(t, Cuboid(region.NewCuboid(uuid.New()), defaults(), false))
}

func TestCuboidFixedSpacing(t *testing.T) {
	c := region.NewCuboid(uuid.New())
	c.SetPoint(0, 0, 0, 0)
	c.SetPoint(1, 9, 9, 9)
	c.SetGridSpacing(5)

	lines := Cuboid(c, defaults(), false)
	// 0 and 5 per direction; 10 sits on the far edge.
	assert.Equal(t, 2*2*6, countMaterial(lines, "GRAY_CONCRETE"))
}

func TestCuboidFractionalSpacing(t *testing.T) {
	grid := func(spacing float64) int {
		c := region.NewCuboid(uuid.New())
		c.SetPoint(0, 0, 0, 0)
		c.SetPoint(1, 3, 3, 3)
		c.SetGridSpacing(spacing)
		return countMaterial(Cuboid(c, defaults(), false), "GRAY_CONCRETE")
	}

	// Extent 4: 0..3 at spacing 1, 0..3.5 at spacing 0.5, per direction.
	assert.Equal(t, 4*2*6, grid(1))
	assert.Equal(t, 8*2*6, grid(0.5))
	assert.Greater(t, grid(0.5), grid(1))
	assert.Equal(t, grid(minFixedSpacing), grid(0.001), "spacing is floored")
}

func TestCuboidColorOverridesOnlyForMulti(t *testing.T) {
	c := region.NewCuboid(uuid.New())
	c.SetPoint(0, 0, 0, 0)
	c.SetPoint(1, 1, 1, 1)
	c.Colors().Set([4]material.Material{"WHITE_WOOL", "", "PINK_WOOL", ""})

	single := Cuboid(c, defaults(), false)
	assert.Zero(t, countMaterial(single, "WHITE_WOOL"))

	multi := Cuboid(c, defaults(), true)
	assert.Equal(t, 12, countMaterial(multi, "WHITE_WOOL"))
	assert.Equal(t, 12, countMaterial(multi, "PINK_WOOL"), "point1 rides on slot 2")
	assert.Equal(t, countMaterial(single, "GRAY_CONCRETE"), countMaterial(multi, "GRAY_CONCRETE"),
		"grid material is never overridden")
}

func TestCylinderZeroRadius(t *testing.T) {
	c := region.NewCylinder(uuid.New())
	c.SetCenter(1, 64, 1)
	c.SetMinMax(60, 70)

	lines := Cylinder(c, defaults(), false)
	require.Len(t, lines, 12)
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"))
}

func TestCylinderOneZeroRadius(t *testing.T) {
	c := region.NewCylinder(uuid.New())
	c.SetCenter(0, 0, 0)
	c.SetRadius(0, 2)
	c.SetMinMax(0, 3)

	lines := Cylinder(c, defaults(), false)
	// layers y=0..4 by 1, verticals dz=-2..2, then the cube
	assert.Equal(t, 5+4, countMaterial(lines, "GRAY_CONCRETE"))
	assert.Equal(t, 1, countMaterial(lines, "YELLOW_CONCRETE"))
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"))
	assert.Len(t, lines, 22)
}

func TestCylinderFull(t *testing.T) {
	c := region.NewCylinder(uuid.New())
	c.SetCenter(0, 5, 0)
	c.SetRadius(3, 3)
	c.SetMinMax(0, 9)

	lines := Cylinder(c, defaults(), false)

	// 22 segments per circle; layers 0,2,4,8,10 (6 is a center-line layer).
	assert.Equal(t, 5*22, countMaterial(lines, "RED_CONCRETE"))
	// two center-line circles plus the zero-offset chords on both axes
	assert.Equal(t, 2*22+4, countMaterial(lines, "YELLOW_CONCRETE"))
	assert.Equal(t, 24, countMaterial(lines, "GRAY_CONCRETE"))
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"))
	assert.Len(t, lines, 194)

	for _, l := range lines {
		if l.Material == "RED_CONCRETE" {
			assert.NotEqual(t, float32(5), l.Start.Y(), "center layer drawn as a regular circle")
		}
	}
	last := lines[len(lines)-12:]
	assert.Equal(t, 12, countMaterial(last, "LIME_CONCRETE"), "center cube is drawn last")
}

func TestCylinderWithoutCenter(t *testing.T) {
	c := region.NewCylinder(uuid.New())
	c.SetRadius(4, 4)
	assert.Empty(t, Cylinder(c, defaults(), false))
}

func TestZeroDivisionDoesNotPanic(t *testing.T) {
	srv, err := settings.LoadServer(strings.NewReader(`
renderer:
  cylinder:
    height_grid_division: 0
    radius_grid_division: -2
  polygon:
    height_grid_division: 0
  cuboid:
    height_grid_division: -1
`))
	require.NoError(t, err)
	snap := srv.Snapshot()

	cyl := region.NewCylinder(uuid.New())
	cyl.SetCenter(0, 0, 0)
	cyl.SetRadius(5, 5)
	cyl.SetMinMax(-5, 5)

	poly := region.NewPolygon(uuid.New())
	poly.SetPoint(0, 0, 0)
	poly.SetPoint(1, 3, 3)
	poly.SetMinMax(0, 10)

	cub := region.NewCuboid(uuid.New())
	cub.SetPoint(0, 0, 0, 0)
	cub.SetPoint(1, 8, 8, 8)

	assert.NotPanics(t, func() {
		assert.NotEmpty(t, Cylinder(cyl, snap, false))
		assert.NotEmpty(t, Polygon(poly, snap, false))
		assert.NotEmpty(t, Cuboid(cub, snap, false))
	})
}

func TestEllipsoid(t *testing.T) {
	e := region.NewEllipsoid(uuid.New())
	e.SetCenter(0, 0, 0)
	e.SetRadii(2, 2, 2)

	lines := Ellipsoid(e, defaults(), false)

	// per plane: offsets -2 (collapsed, 16), -1 and 1 (21 each), center line (21)
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"))
	assert.Equal(t, 3*(16+21+21), countMaterial(lines, "RED_CONCRETE"))
	assert.Equal(t, 3*21, countMaterial(lines, "YELLOW_CONCRETE"))
	assert.Len(t, lines, 249)
}

func TestEllipsoidThinAxis(t *testing.T) {
	st := ellipsoidStyle{
		line:       "RED_CONCRETE",
		centerLine: "YELLOW_CONCRETE",
		radiusDiv:  4,
		maxSpacing: -1,
		segments:   segmentPolicy{min: 16, max: 128, targetLength: 1, scaleFactor: 4},
	}
	var b builder
	planeFamily(&b, st, planeXZ, geom.Point3{0.5, 0.5, 0.5}, geom.Point3{3, 0.2, 3})

	// a thin Y radius leaves only the center-line ring
	require.Len(t, b.lines, 22)
	assert.Equal(t, 22, countMaterial(b.lines, "YELLOW_CONCRETE"))
	for _, l := range b.lines {
		assert.Equal(t, float32(0.5), l.Start.Y())
		assert.Equal(t, float32(0.5), l.End.Y())
	}

	assert.Empty(t, Ellipsoid(region.NewEllipsoid(uuid.New()), defaults(), false))
}

func TestPolygonSquare(t *testing.T) {
	p := region.NewPolygon(uuid.New())
	p.SetPoint(0, 0, 0)
	p.SetPoint(1, 4, 0)
	p.SetPoint(2, 4, 4)
	p.SetPoint(3, 0, 4)
	p.SetMinMax(0, 3)

	lines := Polygon(p, defaults(), false)

	assert.Equal(t, 4*12, countMaterial(lines, "LIME_CONCRETE"), "vertex markers")
	assert.Equal(t, 4, countMaterial(lines, "GRAY_CONCRETE"), "vertical edges")
	horizontal := countMaterial(lines, "RED_CONCRETE")
	assert.GreaterOrEqual(t, horizontal, 8)
	assert.Equal(t, 5*4, horizontal, "layers at y=0..4")

	for _, l := range lines {
		if l.Material == "LIME_CONCRETE" {
			assert.Equal(t, float32(polygonVertexThickness), l.Thickness)
		}
	}
}

func TestPolygonSinglePointAndGaps(t *testing.T) {
	p := region.NewPolygon(uuid.New())
	p.SetPoint(2, 1, 1)
	p.SetMinMax(0, 0)

	lines := Polygon(p, defaults(), false)
	require.Len(t, lines, 12)
	assert.True(t, hasEndpoint(lines, geom.Vec{2, 1, 2}))

	assert.Empty(t, Polygon(region.NewPolygon(uuid.New()), defaults(), false))
}

func TestPolyhedronSharedEdge(t *testing.T) {
	p := region.NewPolyhedron(uuid.New())
	p.SetVertex(0, 0, 0, 0)
	p.SetVertex(1, 4, 0, 0)
	p.SetVertex(2, 4, 0, 4)
	p.SetVertex(3, 0, 0, 4)
	p.AddFace([]int{0, 1, 2})
	p.AddFace([]int{0, 2, 3})

	lines := Polyhedron(p, defaults(), false)

	assert.Equal(t, 5, countMaterial(lines, "RED_CONCRETE"))
	assert.Equal(t, 12, countMaterial(lines, "LIME_CONCRETE"), "vertex 0")
	assert.Equal(t, 36, countMaterial(lines, "BLUE_CONCRETE"))
	assert.Len(t, lines, 53)
}

func TestPolyhedronSkipsBadIndices(t *testing.T) {
	p := region.NewPolyhedron(uuid.New())
	p.SetVertex(0, 0, 0, 0)
	p.SetVertex(2, 1, 1, 1)
	p.AddFace([]int{0, 1, 2, 9, -1})
	p.AddFace([]int{0})

	lines := Polyhedron(p, defaults(), false)
	assert.Zero(t, countMaterial(lines, "RED_CONCRETE"))
	assert.Len(t, lines, 24)
}

func TestRegionDispatch(t *testing.T) {
	c := region.NewCuboid(uuid.New())
	c.SetPoint(0, 0, 0, 0)
	c.SetPoint(1, 1, 1, 1)
	assert.Equal(t, Cuboid(c, defaults(), false), Region(c, defaults(), false))
	assert.Nil(t, Region(nil, defaults(), false))

	fn, ok := ForKind(region.KindCuboid)
	require.True(t, ok)
	got, err := fn(c, defaults(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	_, err = fn(region.NewCylinder(uuid.New()), defaults(), false)
	assert.Error(t, err)
}

func TestDeterministicOutput(t *testing.T) {
	p := region.NewPolyhedron(uuid.New())
	for i := 0; i < 6; i++ {
		p.SetVertex(i, float64(i), float64(i%2), float64(i*2))
	}
	p.AddFace([]int{0, 1, 2, 3})
	p.AddFace([]int{2, 3, 4, 5})
	p.AddFace([]int{5, 0, 1})

	assert.Equal(t, Polyhedron(p, defaults(), false), Polyhedron(p, defaults(), false))
}
