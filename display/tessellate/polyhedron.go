package tessellate

import (
	"github.com/gekko3d/regionviz/display/geom"
	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/settings"
)

type edgeKey struct{ lo, hi int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// Polyhedron draws a cube on every vertex, vertex 0 in its own material, and
// each undirected face edge exactly once.
func Polyhedron(p *region.Polyhedron, snap settings.Snapshot, multi bool) []geom.Line {
	if !p.Defined() {
		return nil
	}

	pal := newPalette(p, multi)
	vertexMat := pal.pick(slotVertex, snap.Material(settings.PolyhedronVertexMaterial))
	vertex0Mat := pal.pick(slotVertex0, snap.Material(settings.PolyhedronVertex0Material))
	size := snap.Float(settings.PolyhedronVertexSize)
	vertexT := snap.Float32(settings.PolyhedronVertexThickness)
	var b builder

	for i := 0; i < p.VertexCount(); i++ {
		v, ok := p.Vertex(i)
		if !ok {
			continue
		}
		m := vertexMat
		if i == 0 {
			m = vertex0Mat
		}
		b.cube(center(v), size, m, vertexT)
	}

	lineMat := pal.pick(slotLine, snap.Material(settings.PolyhedronLineMaterial))
	lineT := snap.Float32(settings.PolyhedronLineThickness)
	seen := make(map[edgeKey]struct{})
	for _, face := range p.Faces() {
		if len(face) < 2 {
			continue
		}
		for i := range face {
			a, c := face[i], face[(i+1)%len(face)]
			va, okA := p.Vertex(a)
			vc, okC := p.Vertex(c)
			if !okA || !okC {
				continue
			}
			k := newEdgeKey(a, c)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			b.line(center(va), center(vc), lineMat, lineT)
		}
	}
	return b.lines
}
