package settings

import (
	"strings"
	"sync"
	"testing"

	"github.com/gekko3d/regionviz/display/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyParts(t *testing.T) {
	assert.Equal(t, "cuboid", CuboidEdgeThickness.Shape())
	assert.Equal(t, "edge_thickness", CuboidEdgeThickness.Name())
	assert.Equal(t, "", Key("loose").Shape())
	assert.Equal(t, "loose", Key("loose").Name())
}

func TestEveryRegisteredKeyHasDefault(t *testing.T) {
	srv := DefaultServer()
	for _, k := range Keys() {
		if IsMaterialKey(k) {
			m, ok := srv.Material(k)
			require.True(t, ok, "missing default for %s", k)
			assert.True(t, material.IsKnown(m), "%s default %s", k, m)
			continue
		}
		v, ok := srv.Number(k)
		require.True(t, ok, "missing default for %s", k)
		assert.NoError(t, srv.Limits.Check(k, v), "default for %s out of range", k)
	}
}

func TestProfileResolvesOverrideThenDefault(t *testing.T) {
	p := NewProfile(nil)

	v, err := p.Number(CuboidEdgeThickness)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, v, 1e-9)

	require.NoError(t, p.SetNumber(CuboidEdgeThickness, 0.1))
	v, err = p.Number(CuboidEdgeThickness)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, v, 1e-9)
	assert.True(t, p.Overridden(CuboidEdgeThickness))

	p.Reset(CuboidEdgeThickness)
	v, err = p.Number(CuboidEdgeThickness)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, v, 1e-9)
	assert.False(t, p.Overridden(CuboidEdgeThickness))
}

func TestProfileRejectsOutOfRange(t *testing.T) {
	p := NewProfile(nil)
	require.NoError(t, p.SetNumber(CylinderMaxCircleSegments, 64))

	err := p.SetNumber(CylinderMaxCircleSegments, 100000)
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, err := p.Number(CylinderMaxCircleSegments)
	require.NoError(t, err)
	assert.Equal(t, 64.0, v, "rejected value must not replace the previous override")
}

func TestProfileValidationCategories(t *testing.T) {
	p := NewProfile(nil)
	cases := []struct {
		key Key
		val float64
		ok  bool
	}{
		{CuboidGridThickness, 0.001, false},
		{CuboidGridThickness, 0.2, true},
		{PolyhedronVertexSize, 5, false},
		{EllipsoidCenterMarkerSize, 1, true},
		{EllipsoidMinSegments, 2, false},
		{CylinderHeightGridDivision, 0, false},
		{CylinderHeightGridDivision, 8, true},
		{PolygonMaxGridSpacing, -1, true},
		{PolygonMaxGridSpacing, -2, false},
		{CylinderTargetSegmentLen, 0.01, false},
		{EllipsoidSqrtScaleFactor, 64, false},
		{Key("custom.anything"), 1e9, true},
	}
	for _, c := range cases {
		err := p.SetNumber(c.key, c.val)
		if c.ok {
			assert.NoError(t, err, "%s=%v", c.key, c.val)
		} else {
			assert.ErrorIs(t, err, ErrOutOfRange, "%s=%v", c.key, c.val)
		}
	}
}

func TestProfileMaterials(t *testing.T) {
	p := NewProfile(nil)

	require.NoError(t, p.SetMaterial(CuboidEdgeMaterial, "minecraft:lime_wool"))
	m, err := p.Material(CuboidEdgeMaterial)
	require.NoError(t, err)
	assert.Equal(t, material.Material("LIME_WOOL"), m)

	err = p.SetMaterial(CuboidEdgeMaterial, "NOT_A_BLOCK")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	m, _ = p.Material(CuboidEdgeMaterial)
	assert.Equal(t, material.Material("LIME_WOOL"), m)
}

func TestProfileWrongKind(t *testing.T) {
	p := NewProfile(nil)
	assert.ErrorIs(t, p.SetNumber(CuboidEdgeMaterial, 1), ErrWrongKind)
	assert.ErrorIs(t, p.SetMaterial(CuboidEdgeThickness, "STONE"), ErrWrongKind)
}

func TestProfileUnknownLookup(t *testing.T) {
	p := NewProfile(nil)
	_, err := p.Number("nowhere.nothing")
	assert.ErrorIs(t, err, ErrUnknownKey)
	_, err = p.Material("nowhere.nothing")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResetShapeAndAll(t *testing.T) {
	p := NewProfile(nil)
	require.NoError(t, p.SetNumber(CuboidEdgeThickness, 0.1))
	require.NoError(t, p.SetMaterial(CuboidGridMaterial, "STONE"))
	require.NoError(t, p.SetNumber(CylinderGridThickness, 0.1))

	p.ResetShape("cuboid")
	assert.False(t, p.Overridden(CuboidEdgeThickness))
	assert.False(t, p.Overridden(CuboidGridMaterial))
	assert.True(t, p.Overridden(CylinderGridThickness))

	p.ResetAll()
	assert.False(t, p.Overridden(CylinderGridThickness))
}

func TestSnapshotIsFrozen(t *testing.T) {
	p := NewProfile(nil)
	require.NoError(t, p.SetNumber(PolygonEdgeThickness, 0.2))
	snap := p.Snapshot()

	require.NoError(t, p.SetNumber(PolygonEdgeThickness, 0.3))
	assert.InDelta(t, 0.2, snap.Float(PolygonEdgeThickness), 1e-9)
	assert.Equal(t, float32(0.2), snap.Float32(PolygonEdgeThickness))
	assert.Equal(t, 4, snap.Int(PolygonHeightGridDivision))
	assert.Equal(t, material.Material("RED_CONCRETE"), snap.Material(PolygonEdgeMaterial))
	assert.False(t, snap.Has("missing.key"))
}

func TestProfileConcurrentAccess(t *testing.T) {
	p := NewProfile(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = p.SetNumber(CuboidGridThickness, 0.01*float64(i%5+1))
				_ = p.Snapshot()
				p.Reset(CuboidGridThickness)
			}
		}(i)
	}
	wg.Wait()
}

func TestLoadServer(t *testing.T) {
	doc := `
renderer:
  cuboid:
    edge_material: light_blue_concrete
    edge_thickness: 0.08
  cylinder:
    min_circle_segments: 24
limits:
  thickness: {min: 0.01, max: 0.2}
`
	srv, err := LoadServer(strings.NewReader(doc))
	require.NoError(t, err)

	m, _ := srv.Material(CuboidEdgeMaterial)
	assert.Equal(t, material.Material("LIGHT_BLUE_CONCRETE"), m)
	v, _ := srv.Number(CuboidEdgeThickness)
	assert.InDelta(t, 0.08, v, 1e-9)
	v, _ = srv.Number(CylinderMinCircleSegments)
	assert.Equal(t, 24.0, v)

	assert.Equal(t, Range{Min: 0.01, Max: 0.2}, srv.Limits.Thickness)
	assert.Equal(t, DefaultLimits().Segments, srv.Limits.Segments, "unspecified limits keep defaults")

	p := NewProfile(srv)
	assert.ErrorIs(t, p.SetNumber(CuboidEdgeThickness, 0.3), ErrOutOfRange)
}

func TestLoadServerErrors(t *testing.T) {
	cases := map[string]error{
		"renderer:\n  cuboid:\n    edge_material: NOT_A_BLOCK\n": ErrUnknownMaterial,
		"renderer:\n  cuboid:\n    nope: 1\n":                    ErrUnknownKey,
		"renderer:\n  cuboid:\n    edge_thickness: thick\n":      ErrWrongKind,
		"renderer:\n  cuboid:\n    edge_material: 3\n":           ErrWrongKind,
	}
	for doc, want := range cases {
		_, err := LoadServer(strings.NewReader(doc))
		assert.ErrorIs(t, err, want, doc)
	}

	_, err := LoadServer(strings.NewReader("renderer: [unclosed"))
	assert.Error(t, err)
}

func TestLoadServerEmpty(t *testing.T) {
	srv, err := LoadServer(strings.NewReader("  \n"))
	require.NoError(t, err)
	v, _ := srv.Number(CuboidGridThickness)
	assert.InDelta(t, 0.02, v, 1e-9)
}

func TestLoadServerFileMissing(t *testing.T) {
	_, err := LoadServerFile("/nonexistent/settings.yaml")
	assert.Error(t, err)
}
