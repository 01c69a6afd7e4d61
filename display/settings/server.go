package settings

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gekko3d/regionviz/display/material"
	"gopkg.in/yaml.v3"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits bound every per-viewer numeric override by category.
type Limits struct {
	Thickness           Range `yaml:"thickness"`
	MarkerSize          Range `yaml:"marker_size"`
	Segments            Range `yaml:"segments"`
	GridDivision        Range `yaml:"grid_division"`
	GridSpacing         Range `yaml:"grid_spacing"`
	TargetSegmentLength Range `yaml:"target_segment_length"`
	ScaleFactor         Range `yaml:"scale_factor"`
}

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{
		Thickness:           Range{Min: 0.005, Max: 0.5},
		MarkerSize:          Range{Min: 0.1, Max: 3},
		Segments:            Range{Min: 3, Max: 512},
		GridDivision:        Range{Min: 1, Max: 64},
		GridSpacing:         Range{Min: -1, Max: 1000},
		TargetSegmentLength: Range{Min: 0.1, Max: 16},
		ScaleFactor:         Range{Min: 0, Max: 32},
	}
}

// rangeFor picks the validation range from the last key segment. Names that
// match no category are unrestricted.
func (l Limits) rangeFor(k Key) (Range, bool) {
	name := k.Name()
	switch {
	case strings.HasSuffix(name, "thickness"):
		return l.Thickness, true
	case strings.HasSuffix(name, "size"):
		return l.MarkerSize, true
	case strings.HasSuffix(name, "segments"):
		return l.Segments, true
	case strings.HasSuffix(name, "division"):
		return l.GridDivision, true
	case strings.HasSuffix(name, "spacing"):
		return l.GridSpacing, true
	case name == "target_segment_length":
		return l.TargetSegmentLength, true
	case strings.Contains(name, "scale_factor"):
		return l.ScaleFactor, true
	}
	return Range{}, false
}

// Check validates v for key k.
func (l Limits) Check(k Key, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrOutOfRange, k, v)
	}
	r, ok := l.rangeFor(k)
	if ok && !r.Contains(v) {
		return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrOutOfRange, k, v, r.Min, r.Max)
	}
	return nil
}

// Server holds the server-wide defaults and override limits. It is read-only
// once handed to a Manager.
type Server struct {
	materials map[Key]material.Material
	numbers   map[Key]float64
	Limits    Limits
}

// DefaultServer returns the built-in defaults.
func DefaultServer() *Server {
	return &Server{
		materials: map[Key]material.Material{
			CuboidEdgeMaterial:   "RED_CONCRETE",
			CuboidPoint1Material: "LIME_CONCRETE",
			CuboidPoint2Material: "BLUE_CONCRETE",
			CuboidGridMaterial:   "GRAY_CONCRETE",

			CylinderCircleMaterial:     "RED_CONCRETE",
			CylinderGridMaterial:       "GRAY_CONCRETE",
			CylinderCenterMaterial:     "LIME_CONCRETE",
			CylinderCenterLineMaterial: "YELLOW_CONCRETE",

			EllipsoidLineMaterial:       "RED_CONCRETE",
			EllipsoidCenterLineMaterial: "YELLOW_CONCRETE",
			EllipsoidCenterMaterial:     "LIME_CONCRETE",

			PolygonEdgeMaterial:     "RED_CONCRETE",
			PolygonVertexMaterial:   "LIME_CONCRETE",
			PolygonVerticalMaterial: "GRAY_CONCRETE",

			PolyhedronLineMaterial:    "RED_CONCRETE",
			PolyhedronVertex0Material: "LIME_CONCRETE",
			PolyhedronVertexMaterial:  "BLUE_CONCRETE",
		},
		numbers: map[Key]float64{
			CuboidEdgeThickness:      0.04,
			CuboidGridThickness:      0.02,
			CuboidHeightGridDivision: 4,
			CuboidMaxGridSpacing:     -1,

			CylinderCircleThickness:    0.04,
			CylinderGridThickness:      0.02,
			CylinderCenterLineThick:    0.03,
			CylinderCenterThickness:    0.04,
			CylinderMinCircleSegments:  16,
			CylinderMaxCircleSegments:  128,
			CylinderTargetSegmentLen:   1,
			CylinderSqrtScaleFactor:    4,
			CylinderHeightGridDivision: 4,
			CylinderRadiusGridDivision: 4,
			CylinderMaxGridSpacing:     -1,

			EllipsoidLineThickness:      0.03,
			EllipsoidCenterLineThick:    0.04,
			EllipsoidCenterMarkerSize:   1.03,
			EllipsoidCenterThickness:    0.04,
			EllipsoidMinSegments:        16,
			EllipsoidMaxSegments:        128,
			EllipsoidTargetSegmentLen:   1,
			EllipsoidSqrtScaleFactor:    4,
			EllipsoidRadiusGridDivision: 4,
			EllipsoidMaxGridSpacing:     -1,

			PolygonEdgeThickness:      0.04,
			PolygonVerticalThickness:  0.03,
			PolygonHeightGridDivision: 4,
			PolygonMaxGridSpacing:     -1,

			PolyhedronLineThickness:   0.04,
			PolyhedronVertexSize:      0.5,
			PolyhedronVertexThickness: 0.03,
		},
		Limits: DefaultLimits(),
	}
}

// Material returns the server default for k.
func (s *Server) Material(k Key) (material.Material, bool) {
	m, ok := s.materials[k]
	return m, ok
}

// Number returns the server default for k.
func (s *Server) Number(k Key) (float64, bool) {
	v, ok := s.numbers[k]
	return v, ok
}

// Snapshot returns the defaults with no per-viewer overrides applied.
func (s *Server) Snapshot() Snapshot {
	return newSnapshot(s, nil, nil)
}

type serverFile struct {
	Renderer map[string]map[string]yaml.Node `yaml:"renderer"`
	Limits   yaml.Node                       `yaml:"limits"`
}

// LoadServer reads a YAML settings document on top of the built-in defaults.
// Every key under renderer.<shape> must be registered and carry a value of the
// right kind.
func LoadServer(r io.Reader) (*Server, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read server settings: %w", err)
	}
	srv := DefaultServer()
	if len(bytes.TrimSpace(data)) == 0 {
		return srv, nil
	}

	var file serverFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse server settings: %w", err)
	}
	if !file.Limits.IsZero() {
		if err := file.Limits.Decode(&srv.Limits); err != nil {
			return nil, fmt.Errorf("parse limits: %w", err)
		}
	}
	for shape, values := range file.Renderer {
		for name, node := range values {
			if err := srv.apply(Key(shape+"."+name), &node); err != nil {
				return nil, err
			}
		}
	}
	return srv, nil
}

// LoadServerFile is LoadServer on the file at path.
func LoadServerFile(path string) (*Server, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open server settings: %w", err)
	}
	defer f.Close()
	return LoadServer(f)
}

func (s *Server) apply(k Key, node *yaml.Node) error {
	kind, ok := registry[k]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: %s must be a scalar (line %d)", ErrWrongKind, k, node.Line)
	}

	switch kind {
	case kindMaterial:
		if node.Tag != "!!str" {
			return fmt.Errorf("%w: %s expects a material name (line %d)", ErrWrongKind, k, node.Line)
		}
		m, err := material.Parse(node.Value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrUnknownMaterial, k, node.Value)
		}
		s.materials[k] = m
	case kindNumber:
		var v float64
		if node.Tag != "!!int" && node.Tag != "!!float" {
			return fmt.Errorf("%w: %s expects a number (line %d)", ErrWrongKind, k, node.Line)
		}
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		s.numbers[k] = v
	}
	return nil
}
