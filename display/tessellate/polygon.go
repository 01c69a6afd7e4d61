package tessellate

import (
	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

const polygonVertexThickness = 0.05

// Polygon draws the prism's outline at stepped heights, a vertical edge per
// vertex and a column frame around each vertex. A lone point gets only its
// frame.
func Polygon(p *region.Polygon, snap settings.Snapshot, multi bool) []geom.Line {
	pts := p.Points()
	if len(pts) == 0 {
		return nil
	}

	pal := newPalette(p, multi)
	minY, maxY := p.MinY(), p.MaxY()
	vertexMat := pal.pick(slotVertex, snap.Material(settings.PolygonVertexMaterial))
	var b builder

	if len(pts) > 1 {
		edgeMat := pal.pick(slotLine, snap.Material(settings.PolygonEdgeMaterial))
		edgeT := snap.Float32(settings.PolygonEdgeThickness)
		step := gridStep(float64(maxY-minY+1),
			snap.Float(settings.PolygonHeightGridDivision),
			snap.Float(settings.PolygonMaxGridSpacing))

		layer := func(y int) {
			ring := make([]geom.Point3, len(pts))
			for i, pt := range pts {
				ring[i] = geom.Point3{pt.X() + 0.5, float64(y), pt.Y() + 0.5}
			}
			b.loop(ring, edgeMat, edgeT)
		}
		for y := minY; y <= maxY+1; y += step {
			layer(y)
		}
		if (maxY+1-minY)%step != 0 {
			layer(maxY + 1)
		}

		vertMat := snap.Material(settings.PolygonVerticalMaterial)
		vertT := snap.Float32(settings.PolygonVerticalThickness)
		for _, pt := range pts {
			b.line(geom.Point3{pt.X() + 0.5, float64(minY), pt.Y() + 0.5},
				geom.Point3{pt.X() + 0.5, float64(maxY + 1), pt.Y() + 0.5}, vertMat, vertT)
		}
	}

	for _, pt := range pts {
		b.frame(geom.Point3{pt.X(), float64(minY), pt.Y()},
			geom.Point3{pt.X() + 1, float64(maxY + 1), pt.Y() + 1}, vertexMat, polygonVertexThickness)
	}
	return b.lines
}
