package region

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a mutation does not apply to the region's
// shape. It always indicates a caller bug.
var ErrUnsupported = errors.New("operation not supported for region")

// ErrPointID is returned for a point or vertex id the shape cannot hold.
var ErrPointID = errors.New("point id out of range")

// The helpers below let a protocol decoder that only holds a Region apply
// incoming mutations without switching on the concrete type itself.

func unsupported(op string, r Region) error {
	if r == nil {
		return fmt.Errorf("%w: %s on nil region", ErrUnsupported, op)
	}
	return fmt.Errorf("%w: %s on %s", ErrUnsupported, op, r.Kind())
}

// SetPoint sets a cuboid corner or a polyhedron vertex.
func SetPoint(r Region, id int, x, y, z float64) error {
	switch v := r.(type) {
	case *Cuboid:
		return v.SetPoint(id, x, y, z)
	case *Polyhedron:
		return v.SetVertex(id, x, y, z)
	}
	return unsupported("SetPoint", r)
}

func SetPolygonPoint(r Region, id, x, z int) error {
	p, ok := r.(*Polygon)
	if !ok {
		return unsupported("SetPolygonPoint", r)
	}
	return p.SetPoint(id, x, z)
}

// SetMinMax sets the vertical extent of a polygon or cylinder.
func SetMinMax(r Region, minY, maxY int) error {
	switch v := r.(type) {
	case *Polygon:
		v.SetMinMax(minY, maxY)
	case *Cylinder:
		v.SetMinMax(minY, maxY)
	default:
		return unsupported("SetMinMax", r)
	}
	return nil
}

func SetEllipsoidCenter(r Region, x, y, z int) error {
	e, ok := r.(*Ellipsoid)
	if !ok {
		return unsupported("SetEllipsoidCenter", r)
	}
	e.SetCenter(x, y, z)
	return nil
}

func SetEllipsoidRadii(r Region, x, y, z float64) error {
	e, ok := r.(*Ellipsoid)
	if !ok {
		return unsupported("SetEllipsoidRadii", r)
	}
	e.SetRadii(x, y, z)
	return nil
}

func SetCylinderCenter(r Region, x, y, z int) error {
	c, ok := r.(*Cylinder)
	if !ok {
		return unsupported("SetCylinderCenter", r)
	}
	c.SetCenter(x, y, z)
	return nil
}

func SetCylinderRadius(r Region, x, z float64) error {
	c, ok := r.(*Cylinder)
	if !ok {
		return unsupported("SetCylinderRadius", r)
	}
	c.SetRadius(x, z)
	return nil
}

// AddPolygon adds a polyhedron face.
func AddPolygon(r Region, ids []int) error {
	p, ok := r.(*Polyhedron)
	if !ok {
		return unsupported("AddPolygon", r)
	}
	p.AddFace(ids)
	return nil
}
