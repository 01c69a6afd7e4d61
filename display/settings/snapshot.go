package settings

import (
	"math"

	"github.com/gekko3d/regionviz/display/material"
)

// Snapshot is an immutable view of resolved settings for one render pass.
// Lookups of keys with no value return the zero value.
type Snapshot struct {
	materials map[Key]material.Material
	numbers   map[Key]float64
}

func newSnapshot(s *Server, mats map[Key]material.Material, nums map[Key]float64) Snapshot {
	snap := Snapshot{
		materials: make(map[Key]material.Material, len(s.materials)+len(mats)),
		numbers:   make(map[Key]float64, len(s.numbers)+len(nums)),
	}
	for k, v := range s.materials {
		snap.materials[k] = v
	}
	for k, v := range s.numbers {
		snap.numbers[k] = v
	}
	for k, v := range mats {
		snap.materials[k] = v
	}
	for k, v := range nums {
		snap.numbers[k] = v
	}
	return snap
}

func (s Snapshot) Material(k Key) material.Material {
	return s.materials[k]
}

func (s Snapshot) Float(k Key) float64 {
	return s.numbers[k]
}

func (s Snapshot) Float32(k Key) float32 {
	return float32(s.numbers[k])
}

// Int truncates toward zero.
func (s Snapshot) Int(k Key) int {
	return int(math.Trunc(s.numbers[k]))
}

// Has reports whether the snapshot carries a value for k.
func (s Snapshot) Has(k Key) bool {
	if _, ok := s.materials[k]; ok {
		return true
	}
	_, ok := s.numbers[k]
	return ok
}
