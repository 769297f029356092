package effects

import (
	"log/slog"
	"sort"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// Registry maps effect IDs to templates. It is read-only once built and
// safe for concurrent use.
type Registry struct {
	templates map[ID]Template
}

// RegistryOption customizes a registry at construction time
type RegistryOption func(r *Registry)

// WithTemplate registers t under id, replacing any default template
func WithTemplate(id ID, t Template) RegistryOption {
	return func(r *Registry) {
		r.templates[id] = t
	}
}

// NewRegistry builds a registry with the default templates followed by opts
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		templates: map[ID]Template{
			Healing:     HealingTemplate(),
			ExtraAttack: AttackTemplate(),
			WellFed:     WellFedTemplate(),
			HitRate:     HitRateTemplate(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve instantiates the template registered under id with parameters
func (r *Registry) Resolve(id ID, parameters []string) (*Effect, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, dngerr.UnknownEffectf("%s did not match any effect template", id).
			WithMeta("effect_id", string(id))
	}

	effect, err := t.Instantiate(id, parameters)
	if err != nil {
		return nil, err
	}

	slog.Debug("effect resolved", "effect_id", string(id), "effect", effect.String())
	return effect, nil
}

// Template returns the template registered under id
func (r *Registry) Template(id ID) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// IDs returns every registered ID in lexical order
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered templates
func (r *Registry) Len() int {
	return len(r.templates)
}
