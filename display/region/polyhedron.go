package region

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/regionviz/display/geom"
)

// Polyhedron is a vertex list plus faces that index into it. Vertices may
// have gaps; faces may reference missing vertices.
type Polyhedron struct {
	base
	vertices []*geom.Point3
	faces    [][]int
}

func NewPolyhedron(owner uuid.UUID) *Polyhedron {
	return &Polyhedron{base: base{owner: owner}}
}

func (p *Polyhedron) Kind() Kind { return KindPolyhedron }

// SetVertex sets vertex id, growing the list with gaps as needed.
func (p *Polyhedron) SetVertex(id int, x, y, z float64) error {
	if id < 0 {
		return fmt.Errorf("%w: polyhedron vertex %d", ErrPointID, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.vertices) <= id {
		p.vertices = append(p.vertices, nil)
	}
	p.vertices[id] = &geom.Point3{x, y, z}
	return nil
}

// AddFace appends a face. The index slice is copied.
func (p *Polyhedron) AddFace(ids []int) {
	f := append([]int(nil), ids...)
	p.mu.Lock()
	p.faces = append(p.faces, f)
	p.mu.Unlock()
}

// Vertex returns vertex i if it exists and is set.
func (p *Polyhedron) Vertex(i int) (geom.Point3, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i < 0 || i >= len(p.vertices) {
		return geom.Point3{}, false
	}
	return deref(p.vertices[i])
}

// VertexCount includes gaps.
func (p *Polyhedron) VertexCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.vertices)
}

// Faces returns a deep copy of the face list.
func (p *Polyhedron) Faces() [][]int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return copyFaces(p.faces)
}

func copyFaces(faces [][]int) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = append([]int(nil), f...)
	}
	return out
}

func (p *Polyhedron) Defined() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.vertices) > 0 && len(p.faces) > 0
}

func (p *Polyhedron) Bounds() (geom.BoundingBox, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var box geom.BoundingBox
	found := false
	for _, v := range p.vertices {
		if v == nil {
			continue
		}
		if !found {
			box, found = geom.NewBoundingBox(*v, *v), true
			continue
		}
		box = geom.NewBoundingBox(
			geom.Point3{min(box.Min.X(), v.X()), min(box.Min.Y(), v.Y()), min(box.Min.Z(), v.Z())},
			geom.Point3{max(box.Max.X(), v.X()), max(box.Max.Y(), v.Y()), max(box.Max.Z(), v.Z())},
		)
	}
	return box, found
}

func (p *Polyhedron) validVertices() int {
	n := 0
	for _, v := range p.vertices {
		if v != nil {
			n++
		}
	}
	return n
}

func (p *Polyhedron) Info() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("Polyhedron Region:\n")
	fmt.Fprintf(&sb, "  Vertices: %d\n", len(p.vertices))
	fmt.Fprintf(&sb, "  Faces: %d\n", len(p.faces))
	fmt.Fprintf(&sb, "  Valid vertices: %d", p.validVertices())
	return sb.String()
}

func (p *Polyhedron) Clone() Region {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := &Polyhedron{
		vertices: make([]*geom.Point3, len(p.vertices)),
		faces:    copyFaces(p.faces),
	}
	for i, v := range p.vertices {
		out.vertices[i] = clonePoint(v)
	}
	p.copyTo(&out.base)
	return out
}
