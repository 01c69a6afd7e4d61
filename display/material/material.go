// Package material defines the closed set of block materials a line can be
// drawn with.
package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Material names a block material, e.g. "RED_CONCRETE". The empty value
// means "unset".
type Material string

var ErrUnknown = errors.New("unknown material")

var colors = []string{
	"WHITE", "ORANGE", "MAGENTA", "LIGHT_BLUE", "YELLOW", "LIME", "PINK", "GRAY",
	"LIGHT_GRAY", "CYAN", "PURPLE", "BLUE", "BROWN", "GREEN", "RED", "BLACK",
}

var colorSuffixes = []string{
	"CONCRETE", "WOOL", "TERRACOTTA", "STAINED_GLASS", "GLAZED_TERRACOTTA", "CONCRETE_POWDER",
}

var extras = []string{
	"GLASS", "TINTED_GLASS", "TERRACOTTA", "GLOWSTONE", "SEA_LANTERN", "SHROOMLIGHT",
	"REDSTONE_BLOCK", "GOLD_BLOCK", "DIAMOND_BLOCK", "EMERALD_BLOCK", "LAPIS_BLOCK",
	"IRON_BLOCK", "COPPER_BLOCK", "AMETHYST_BLOCK", "QUARTZ_BLOCK", "OBSIDIAN",
	"CRYING_OBSIDIAN", "BEDROCK", "STONE", "END_ROD", "LIGHTNING_ROD", "PRISMARINE",
	"SNOW_BLOCK", "SLIME_BLOCK", "HONEY_BLOCK", "MAGMA_BLOCK", "OCHRE_FROGLIGHT",
	"VERDANT_FROGLIGHT", "PEARLESCENT_FROGLIGHT", "BARRIER",
}

var known = buildKnown()

func buildKnown() map[Material]struct{} {
	m := make(map[Material]struct{}, len(colors)*len(colorSuffixes)+len(extras))
	for _, c := range colors {
		for _, s := range colorSuffixes {
			m[Material(c+"_"+s)] = struct{}{}
		}
	}
	for _, e := range extras {
		m[Material(e)] = struct{}{}
	}
	return m
}

// Parse normalizes name (case, surrounding space, optional "minecraft:"
// namespace) and checks it against the known set.
func Parse(name string) (Material, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "MINECRAFT:")
	m := Material(n)
	if !IsKnown(m) {
		return "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return m, nil
}

// MustParse is Parse for compile-time constants; it panics on unknown names.
func MustParse(name string) Material {
	m, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return m
}

func IsKnown(m Material) bool {
	_, ok := known[m]
	return ok
}

// Known returns every material name, sorted.
func Known() []Material {
	out := make([]Material, 0, len(known))
	for m := range known {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m Material) String() string { return string(m) }

// IsZero reports whether the material is unset.
func (m Material) IsZero() bool { return m == "" }
