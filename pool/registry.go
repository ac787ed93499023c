package pool

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"errors"
	"maps"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

var ErrEngineNotFound = errors.New("engine not found")

// Engine is a registered detector. Detect calls on one engine are serialized.
type Engine struct {
	ID          string
	Description string
	EngineType  int

	mu      sync.Mutex
	backend iface.Backend
}

func (e *Engine) Config() iface.EngineConfig {
	return e.backend.CheckConfig()
}

func (e *Engine) Detect(img gocv.Mat) (*iface.DetectionSet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.backend.Detect(img)
}

func (e *Engine) destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.backend.Destroy()
}

type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*Engine)}
}

func (r *Registry) Add(backend iface.Backend, description string, engineType int) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.engines[id] = &Engine{ID: id, Description: description, EngineType: engineType, backend: backend}
	r.mu.Unlock()
	logger.Log().Info("engine added", zap.String("ID", id), zap.String("Description", description))
	return id
}

func (r *Registry) Get(id string) (*Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[id]
	if !ok {
		return nil, ErrEngineNotFound
	}
	return e, nil
}

func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	e, ok := r.engines[id]
	if ok {
		delete(r.engines, id)
	}
	r.mu.Unlock()
	if !ok {
		return ErrEngineNotFound
	}
	e.destroy()
	logger.Log().Info("engine destroyed", zap.String("ID", id))
	return nil
}

// List returns a snapshot of the registered engines.
func (r *Registry) List() map[string]*Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.engines)
}

func (r *Registry) DestroyAll() {
	r.mu.Lock()
	all := r.engines
	r.engines = make(map[string]*Engine)
	r.mu.Unlock()
	for _, e := range all {
		e.destroy()
	}
}
