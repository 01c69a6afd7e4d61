// Package settings resolves every render tunable to a per-viewer override or
// the server default, and validates overrides against server limits.
package settings

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnknownKey      = errors.New("unknown setting")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrOutOfRange      = errors.New("value out of range")
	ErrWrongKind       = errors.New("wrong value kind for setting")
)

// Key is "<shape>.<name>", e.g. "cuboid.edge_thickness".
type Key string

// Name returns the part after the shape prefix.
func (k Key) Name() string {
	s := string(k)
	return s[strings.LastIndexByte(s, '.')+1:]
}

// Shape returns the shape prefix, or "" for unqualified keys.
func (k Key) Shape() string {
	s := string(k)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return ""
}

type valueKind int

const (
	kindMaterial valueKind = iota
	kindNumber
)

const (
	CuboidEdgeMaterial         Key = "cuboid.edge_material"
	CuboidPoint1Material       Key = "cuboid.point1_material"
	CuboidPoint2Material       Key = "cuboid.point2_material"
	CuboidGridMaterial         Key = "cuboid.grid_material"
	CuboidEdgeThickness        Key = "cuboid.edge_thickness"
	CuboidGridThickness        Key = "cuboid.grid_thickness"
	CuboidHeightGridDivision   Key = "cuboid.height_grid_division"
	CuboidMaxGridSpacing       Key = "cuboid.max_grid_spacing"
	CylinderCircleMaterial     Key = "cylinder.circle_material"
	CylinderGridMaterial       Key = "cylinder.grid_material"
	CylinderCenterMaterial     Key = "cylinder.center_material"
	CylinderCenterLineMaterial Key = "cylinder.center_line_material"
	CylinderCircleThickness    Key = "cylinder.circle_thickness"
	CylinderGridThickness      Key = "cylinder.grid_thickness"
	CylinderCenterLineThick    Key = "cylinder.center_line_thickness"
	CylinderCenterThickness    Key = "cylinder.center_thickness"
	CylinderMinCircleSegments  Key = "cylinder.min_circle_segments"
	CylinderMaxCircleSegments  Key = "cylinder.max_circle_segments"
	CylinderTargetSegmentLen   Key = "cylinder.target_segment_length"
	CylinderSqrtScaleFactor    Key = "cylinder.sqrt_scale_factor"
	CylinderHeightGridDivision Key = "cylinder.height_grid_division"
	CylinderRadiusGridDivision Key = "cylinder.radius_grid_division"
	CylinderMaxGridSpacing     Key = "cylinder.max_grid_spacing"

	EllipsoidLineMaterial       Key = "ellipsoid.line_material"
	EllipsoidCenterLineMaterial Key = "ellipsoid.center_line_material"
	EllipsoidCenterMaterial     Key = "ellipsoid.center_material"
	EllipsoidLineThickness      Key = "ellipsoid.line_thickness"
	EllipsoidCenterLineThick    Key = "ellipsoid.center_line_thickness"
	EllipsoidCenterMarkerSize   Key = "ellipsoid.center_marker_size"
	EllipsoidCenterThickness    Key = "ellipsoid.center_thickness"
	EllipsoidMinSegments        Key = "ellipsoid.min_segments"
	EllipsoidMaxSegments        Key = "ellipsoid.max_segments"
	EllipsoidTargetSegmentLen   Key = "ellipsoid.target_segment_length"
	EllipsoidSqrtScaleFactor    Key = "ellipsoid.sqrt_scale_factor"
	EllipsoidRadiusGridDivision Key = "ellipsoid.radius_grid_division"
	EllipsoidMaxGridSpacing     Key = "ellipsoid.max_grid_spacing"

	PolygonEdgeMaterial       Key = "polygon.edge_material"
	PolygonVertexMaterial     Key = "polygon.vertex_material"
	PolygonVerticalMaterial   Key = "polygon.vertical_material"
	PolygonEdgeThickness      Key = "polygon.edge_thickness"
	PolygonVerticalThickness  Key = "polygon.vertical_thickness"
	PolygonHeightGridDivision Key = "polygon.height_grid_division"
	PolygonMaxGridSpacing     Key = "polygon.max_grid_spacing"

	PolyhedronLineMaterial    Key = "polyhedron.line_material"
	PolyhedronVertex0Material Key = "polyhedron.vertex0_material"
	PolyhedronVertexMaterial  Key = "polyhedron.vertex_material"
	PolyhedronLineThickness   Key = "polyhedron.line_thickness"
	PolyhedronVertexSize      Key = "polyhedron.vertex_size"
	PolyhedronVertexThickness Key = "polyhedron.vertex_thickness"
)

var registry = map[Key]valueKind{}

func init() {
	for _, k := range []Key{
		CuboidEdgeMaterial, CuboidPoint1Material, CuboidPoint2Material, CuboidGridMaterial,
		CylinderCircleMaterial, CylinderGridMaterial, CylinderCenterMaterial, CylinderCenterLineMaterial,
		EllipsoidLineMaterial, EllipsoidCenterLineMaterial, EllipsoidCenterMaterial,
		PolygonEdgeMaterial, PolygonVertexMaterial, PolygonVerticalMaterial,
		PolyhedronLineMaterial, PolyhedronVertex0Material, PolyhedronVertexMaterial,
	} {
		registry[k] = kindMaterial
	}
	for _, k := range []Key{
		CuboidEdgeThickness, CuboidGridThickness, CuboidHeightGridDivision, CuboidMaxGridSpacing,
		CylinderCircleThickness, CylinderGridThickness, CylinderCenterLineThick, CylinderCenterThickness,
		CylinderMinCircleSegments, CylinderMaxCircleSegments, CylinderTargetSegmentLen,
		CylinderSqrtScaleFactor, CylinderHeightGridDivision, CylinderRadiusGridDivision,
		CylinderMaxGridSpacing,
		EllipsoidLineThickness, EllipsoidCenterLineThick, EllipsoidCenterMarkerSize,
		EllipsoidCenterThickness, EllipsoidMinSegments, EllipsoidMaxSegments,
		EllipsoidTargetSegmentLen, EllipsoidSqrtScaleFactor, EllipsoidRadiusGridDivision,
		EllipsoidMaxGridSpacing,
		PolygonEdgeThickness, PolygonVerticalThickness, PolygonHeightGridDivision, PolygonMaxGridSpacing,
		PolyhedronLineThickness, PolyhedronVertexSize, PolyhedronVertexThickness,
	} {
		registry[k] = kindNumber
	}
}

// Keys returns every registered key, sorted.
func Keys() []Key {
	out := make([]Key, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsMaterialKey reports whether k is a registered material-valued key.
func IsMaterialKey(k Key) bool {
	kind, ok := registry[k]
	return ok && kind == kindMaterial
}
