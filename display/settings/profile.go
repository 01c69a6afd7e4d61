package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gekko3d/regionviz/display/material"
)

// Profile holds one viewer's overrides on top of a Server. Safe for
// concurrent use.
type Profile struct {
	mu        sync.RWMutex
	server    *Server
	materials map[Key]material.Material
	numbers   map[Key]float64
}

// NewProfile returns an empty profile; a nil server uses DefaultServer.
func NewProfile(server *Server) *Profile {
	if server == nil {
		server = DefaultServer()
	}
	return &Profile{
		server:    server,
		materials: make(map[Key]material.Material),
		numbers:   make(map[Key]float64),
	}
}

func (p *Profile) Server() *Server { return p.server }

// SetNumber stores a numeric override. Rejected values leave the profile
// unchanged.
func (p *Profile) SetNumber(k Key, v float64) error {
	if kind, ok := registry[k]; ok && kind != kindNumber {
		return fmt.Errorf("%w: %s expects a material", ErrWrongKind, k)
	}
	if err := p.server.Limits.Check(k, v); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.numbers[k] = v
	return nil
}

// SetMaterial stores a material override by name.
func (p *Profile) SetMaterial(k Key, name string) error {
	if kind, ok := registry[k]; ok && kind != kindMaterial {
		return fmt.Errorf("%w: %s expects a number", ErrWrongKind, k)
	}
	m, err := material.Parse(name)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrUnknownMaterial, k, name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.materials[k] = m
	return nil
}

// Reset drops the override for k so the server default applies again.
func (p *Profile) Reset(k Key) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.materials, k)
	delete(p.numbers, k)
}

// ResetShape drops every override whose key starts with "<shape>.".
func (p *Profile) ResetShape(shape string) {
	prefix := strings.TrimSuffix(shape, ".") + "."

	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.materials {
		if strings.HasPrefix(string(k), prefix) {
			delete(p.materials, k)
		}
	}
	for k := range p.numbers {
		if strings.HasPrefix(string(k), prefix) {
			delete(p.numbers, k)
		}
	}
}

func (p *Profile) ResetAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.materials)
	clear(p.numbers)
}

// Overridden reports whether the viewer has its own value for k.
func (p *Profile) Overridden(k Key) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.materials[k]; ok {
		return true
	}
	_, ok := p.numbers[k]
	return ok
}

// Material resolves k: the override if present, else the server default.
func (p *Profile) Material(k Key) (material.Material, error) {
	p.mu.RLock()
	m, ok := p.materials[k]
	p.mu.RUnlock()
	if ok {
		return m, nil
	}
	if m, ok := p.server.Material(k); ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, k)
}

// Number resolves k: the override if present, else the server default.
func (p *Profile) Number(k Key) (float64, error) {
	p.mu.RLock()
	v, ok := p.numbers[k]
	p.mu.RUnlock()
	if ok {
		return v, nil
	}
	if v, ok := p.server.Number(k); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKey, k)
}

// Snapshot freezes the currently resolved values.
func (p *Profile) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return newSnapshot(p.server, p.materials, p.numbers)
}
