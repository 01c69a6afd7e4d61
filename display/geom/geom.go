// Package geom holds the value types shared by the region model and the
// tessellator: points, axis-aligned boxes and colored line segments.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/regionviz/display/material"
)

// Point3 is a position in block space.
type Point3 = mgl64.Vec3

// Point2 is a position on the XZ plane. X() is x, Y() is z.
type Point2 = mgl64.Vec2

// Vec is the single precision vector used for emitted line endpoints.
type Vec = mgl32.Vec3

// BoundingBox is an axis-aligned box. Min is component-wise <= Max.
type BoundingBox struct {
	Min Point3
	Max Point3
}

// NewBoundingBox builds the box spanned by two corners given in any order.
func NewBoundingBox(a, b Point3) BoundingBox {
	return BoundingBox{
		Min: Point3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())},
		Max: Point3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())},
	}
}

// Size returns Max-Min.
func (b BoundingBox) Size() Point3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Width() float64  { return b.Max.X() - b.Min.X() }
func (b BoundingBox) Height() float64 { return b.Max.Y() - b.Min.Y() }
func (b BoundingBox) Length() float64 { return b.Max.Z() - b.Min.Z() }

// Volume is the geometric volume of the box.
func (b BoundingBox) Volume() float64 {
	return b.Width() * b.Height() * b.Length()
}

// BlockVolume counts the blocks covered when Min and Max are both inclusive
// block coordinates.
func (b BoundingBox) BlockVolume() float64 {
	return (b.Width() + 1) * (b.Height() + 1) * (b.Length() + 1)
}

func (b BoundingBox) Center() Point3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Expand grows Max by the given amounts. Negative amounts are ignored so the
// box never inverts.
func (b BoundingBox) Expand(dx, dy, dz float64) BoundingBox {
	return BoundingBox{
		Min: b.Min,
		Max: b.Max.Add(Point3{math.Max(dx, 0), math.Max(dy, 0), math.Max(dz, 0)}),
	}
}

// Line is one renderable segment.
type Line struct {
	Start     Vec
	End       Vec
	Material  material.Material
	Thickness float32
}

// Length returns the distance between the endpoints.
func (l Line) Length() float32 {
	return l.End.Sub(l.Start).Len()
}

// Vec3 narrows a block-space point to an output vector.
func Vec3(x, y, z float64) Vec {
	return Vec{float32(x), float32(y), float32(z)}
}
