package regionviz

import (
	"testing"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendSpawnRemove(t *testing.T) {
	b := NewMemoryBackend()
	viewer := uuid.New()
	l1 := geom.Line{Start: geom.Vec{0, 0, 0}, End: geom.Vec{1, 0, 0}, Material: "STONE", Thickness: 0.1}
	l2 := geom.Line{Start: geom.Vec{0, 0, 0}, End: geom.Vec{0, 1, 0}, Material: "STONE", Thickness: 0.1}

	id1, err := b.Spawn(viewer, l1)
	require.NoError(t, err)
	id2, err := b.Spawn(viewer, l2)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, []geom.Line{l1, l2}, b.Live(viewer))

	require.NoError(t, b.Remove(viewer, id1))
	assert.Equal(t, 1, b.LiveCount(viewer))
	assert.ErrorIs(t, b.Remove(viewer, id1), ErrUnknownPrimitive)
	assert.ErrorIs(t, b.Remove(uuid.New(), id2), ErrUnknownPrimitive)

	events := b.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventSpawn, events[0].Kind)
	assert.Equal(t, EventRemove, events[2].Kind)
	assert.Equal(t, id1, events[2].ID)
	assert.Equal(t, "remove", events[2].Kind.String())

	b.ResetEvents()
	assert.Empty(t, b.Events())
	assert.Equal(t, 1, b.TotalLive())
}
