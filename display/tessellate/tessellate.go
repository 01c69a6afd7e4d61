package tessellate

import (
	"fmt"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

// Func tessellates one region. It fails if r is not the variant it was
// registered for.
type Func func(r region.Region, snap settings.Snapshot, multi bool) ([]geom.Line, error)

// ForKind returns the tessellator for k.
func ForKind(k region.Kind) (Func, bool) {
	fn, ok := byKind[k]
	return fn, ok
}

var byKind = map[region.Kind]Func{
	region.KindCuboid:     typed(Cuboid),
	region.KindCylinder:   typed(Cylinder),
	region.KindEllipsoid:  typed(Ellipsoid),
	region.KindPolygon:    typed(Polygon),
	region.KindPolyhedron: typed(Polyhedron),
}

func typed[R region.Region](fn func(R, settings.Snapshot, bool) []geom.Line) Func {
	return func(r region.Region, snap settings.Snapshot, multi bool) ([]geom.Line, error) {
		v, ok := r.(R)
		if !ok {
			return nil, fmt.Errorf("tessellate: got %T", r)
		}
		return fn(v, snap, multi), nil
	}
}

// Region dispatches on the concrete variant. A nil or unrecognized region
// yields no lines.
func Region(r region.Region, snap settings.Snapshot, multi bool) []geom.Line {
	switch v := r.(type) {
	case *region.Cuboid:
		return Cuboid(v, snap, multi)
	case *region.Cylinder:
		return Cylinder(v, snap, multi)
	case *region.Ellipsoid:
		return Ellipsoid(v, snap, multi)
	case *region.Polygon:
		return Polygon(v, snap, multi)
	case *region.Polyhedron:
		return Polyhedron(v, snap, multi)
	}
	return nil
}
