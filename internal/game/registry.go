package game

import (
	"fmt"
	"sync"
)

// Factory builds a session for an already-normalized config. It only ever
// sees configs whose concrete type matched at registration.
type Factory func(id string, cfg Config) Session

type entry struct {
	accepts func(Config) bool
	build   Factory
}

// Registry maps each variant to the factory that constructs its sessions.
type Registry struct {
	mu        sync.RWMutex
	factories map[Variant]entry
}

func NewRegistry() *Registry {
	return &Registry{factories: map[Variant]entry{}}
}

// Register binds v to build. C is the variant's concrete config type; Prepare
// rejects any other type that claims v. The zero C must report v, so pointer
// configs need Variant methods that do not dereference the receiver.
func Register[C Config](r *Registry, v Variant, build func(id string, cfg C) Session) {
	var zero C
	if !v.Valid() || build == nil || zero.Variant() != v {
		panic(fmt.Sprintf("game: invalid registration for variant %d", int(v)))
	}
	e := entry{
		accepts: func(cfg Config) bool {
			_, ok := cfg.(C)
			return ok
		},
		build: func(id string, cfg Config) Session { return build(id, cfg.(C)) },
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[v] = e
}

func (r *Registry) lookup(v Variant) (entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.factories[v]
	if !ok {
		return entry{}, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return e, nil
}

// Prepare validates cfg and returns a constructor bound to it, so callers can
// reject bad requests before committing to a session ID.
func (r *Registry) Prepare(cfg Config) (func(id string) Session, error) {
	if cfg == nil {
		return nil, ErrUnknownVariant
	}
	e, err := r.lookup(cfg.Variant())
	if err != nil {
		return nil, err
	}
	if !e.accepts(cfg) {
		return nil, fmt.Errorf("%w: %T is not a %s config", ErrInvalidConfig, cfg, cfg.Variant())
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return func(id string) Session { return e.build(id, cfg) }, nil
}

// Variants returns the registered variants in declaration order.
func (r *Registry) Variants() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Variant, 0, len(r.factories))
	for _, v := range Variants {
		if _, ok := r.factories[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
