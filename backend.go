package regionviz

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gekko3d/regionviz/display/geom"
	"github.com/google/uuid"
)

var ErrUnknownPrimitive = errors.New("unknown primitive")

// PrimitiveID names one line primitive spawned on a Backend.
type PrimitiveID uint64

// Backend displays line primitives to a single viewer.
type Backend interface {
	Spawn(viewer uuid.UUID, line geom.Line) (PrimitiveID, error)
	Remove(viewer uuid.UUID, id PrimitiveID) error
}

type EventKind int

const (
	EventSpawn EventKind = iota
	EventRemove
)

func (k EventKind) String() string {
	if k == EventRemove {
		return "remove"
	}
	return "spawn"
}

// Event records one Backend call in the order it happened.
type Event struct {
	Kind   EventKind
	Viewer uuid.UUID
	ID     PrimitiveID
	Line   geom.Line
}

// SpawnHook may veto a spawn by returning an error.
type SpawnHook func(viewer uuid.UUID, line geom.Line) error

// MemoryBackend keeps primitives in memory. It is safe for concurrent use.
type MemoryBackend struct {
	mu     sync.Mutex
	next   PrimitiveID
	live   map[uuid.UUID]map[PrimitiveID]geom.Line
	events []Event
	hook   SpawnHook
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{live: make(map[uuid.UUID]map[PrimitiveID]geom.Line)}
}

// SetSpawnHook installs h; nil removes it.
func (b *MemoryBackend) SetSpawnHook(h SpawnHook) {
	b.mu.Lock()
	b.hook = h
	b.mu.Unlock()
}

func (b *MemoryBackend) Spawn(viewer uuid.UUID, line geom.Line) (PrimitiveID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.hook != nil {
		if err := b.hook(viewer, line); err != nil {
			return 0, err
		}
	}

	b.next++
	id := b.next
	m, ok := b.live[viewer]
	if !ok {
		m = make(map[PrimitiveID]geom.Line)
		b.live[viewer] = m
	}
	m[id] = line
	b.events = append(b.events, Event{Kind: EventSpawn, Viewer: viewer, ID: id, Line: line})
	return id, nil
}

func (b *MemoryBackend) Remove(viewer uuid.UUID, id PrimitiveID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := b.live[viewer]
	line, ok := m[id]
	if !ok {
		return fmt.Errorf("%w: %d for viewer %s", ErrUnknownPrimitive, id, viewer)
	}
	delete(m, id)
	if len(m) == 0 {
		delete(b.live, viewer)
	}
	b.events = append(b.events, Event{Kind: EventRemove, Viewer: viewer, ID: id, Line: line})
	return nil
}

// Live returns the viewer's primitives in spawn order.
func (b *MemoryBackend) Live(viewer uuid.UUID) []geom.Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := b.live[viewer]
	ids := make([]PrimitiveID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]geom.Line, len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}
	return out
}

func (b *MemoryBackend) LiveCount(viewer uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live[viewer])
}

func (b *MemoryBackend) TotalLive() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, m := range b.live {
		n += len(m)
	}
	return n
}

// Events returns a copy of the event log.
func (b *MemoryBackend) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.events...)
}

func (b *MemoryBackend) ResetEvents() {
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()
}
