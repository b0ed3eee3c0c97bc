package manifest

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry holds the manifests of a multi-command program, keyed by command
// name. Safe for concurrent use.
type Registry struct {
	sync.RWMutex
	commands map[string]*Manifest
	logger   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		commands: make(map[string]*Manifest),
		logger:   logger.With(zap.String("component", "manifest-registry")),
	}
}

// Register adds a manifest to the registry.
func (r *Registry) Register(m *Manifest) error {
	r.Lock()
	defer r.Unlock()

	name := m.Name
	if _, exists := r.commands[name]; exists {
		return &AlreadyRegisteredError{CommandName: name}
	}

	r.commands[name] = m

	r.logger.Info("Command registered",
		zap.String("name", name),
		zap.String("version", m.Version),
		zap.Int("flags", len(m.Flags)),
	)

	return nil
}

// Get retrieves a manifest by command name.
func (r *Registry) Get(name string) (*Manifest, bool) {
	r.RLock()
	defer r.RUnlock()

	m, ok := r.commands[name]
	return m, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a manifest from the registry.
func (r *Registry) Unregister(name string) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.commands[name]; !ok {
		return
	}
	delete(r.commands, name)

	r.logger.Info("Command unregistered", zap.String("name", name))
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.commands)
}
