package regionviz

import (
	"runtime"

	"github.com/gekko3d/regionviz/display/settings"
	"github.com/google/uuid"
)

type ManagerBuilder struct {
	backend Backend
	logger  Logger
	server  *settings.Server
	workers int
}

func NewManagerBuilder() *ManagerBuilder {
	return &ManagerBuilder{}
}

func (b *ManagerBuilder) UseBackend(backend Backend) *ManagerBuilder {
	b.backend = backend

	return b
}

func (b *ManagerBuilder) UseLogger(logger Logger) *ManagerBuilder {
	b.logger = logger

	return b
}

func (b *ManagerBuilder) UseServerSettings(server *settings.Server) *ManagerBuilder {
	b.server = server

	return b
}

// UseWorkers bounds UpdateAll concurrency; n <= 0 means GOMAXPROCS.
func (b *ManagerBuilder) UseWorkers(n int) *ManagerBuilder {
	b.workers = n

	return b
}

// Build fills unset parts with a MemoryBackend, a no-op logger and the
// built-in server settings.
func (b *ManagerBuilder) Build() *Manager {
	m := &Manager{
		backend: b.backend,
		logger:  b.logger,
		server:  b.server,
		workers: b.workers,
		viewers: make(map[uuid.UUID]*viewerRenderers),
	}
	if m.backend == nil {
		m.backend = NewMemoryBackend()
	}
	if m.logger == nil {
		m.logger = NewNopLogger()
	}
	if m.server == nil {
		m.server = settings.DefaultServer()
	}
	if m.workers <= 0 {
		m.workers = runtime.GOMAXPROCS(0)
	}
	m.logger.Infof("render manager started (%d workers)", m.workers)
	return m
}

// Backend returns the backend the manager draws to.
func (m *Manager) Backend() Backend { return m.backend }
