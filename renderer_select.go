package regionviz

import (
	"errors"
	"fmt"

	"github.com/gekko3d/regionviz/display/region"
	"github.com/gekko3d/regionviz/display/tessellate"
	"github.com/google/uuid"
)

var ErrNoRenderer = errors.New("no renderer for region kind")

// newRenderer picks the renderer for kind. Exactly one tessellator is
// registered per kind.
func newRenderer(kind region.Kind, viewer uuid.UUID, multi bool, backend Backend, logger Logger) (*Renderer, error) {
	fn, ok := tessellate.ForKind(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRenderer, kind)
	}
	return &Renderer{
		kind:    kind,
		viewer:  viewer,
		multi:   multi,
		tess:    fn,
		backend: backend,
		logger:  logger,
	}, nil
}
