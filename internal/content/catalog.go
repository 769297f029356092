// Package content loads named effect definitions from YAML so that items,
// spells and food can refer to effects by key.
package content

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// EffectEntry is one effect definition as written in the catalog file
type EffectEntry struct {
	Key        string   `yaml:"key"`
	Effect     string   `yaml:"effect"`
	Parameters []string `yaml:"parameters"`
}

type catalogFile struct {
	Effects []EffectEntry `yaml:"effects"`
}

// Catalog maps content keys to resolved effects
type Catalog struct {
	effects map[string]*effects.Effect
}

type loadOptions struct {
	skipInvalid bool
}

// Option customizes catalog loading
type Option func(o *loadOptions)

// WithSkipInvalid logs and skips entries whose effect cannot be resolved
// instead of failing the whole load. Malformed YAML and duplicate keys still
// fail.
func WithSkipInvalid() Option {
	return func(o *loadOptions) {
		o.skipInvalid = true
	}
}

// LoadCatalog parses a catalog from r and resolves every entry through reg
func LoadCatalog(r io.Reader, reg *effects.Registry, opts ...Option) (*Catalog, error) {
	if reg == nil {
		return nil, dngerr.InvalidArgument("registry is required")
	}

	options := &loadOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var file catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, dngerr.WrapWithCode(err, dngerr.CodeInvalidArgument, "decode effect catalog")
	}

	catalog := &Catalog{effects: make(map[string]*effects.Effect, len(file.Effects))}
	for i, entry := range file.Effects {
		if entry.Key == "" {
			return nil, dngerr.InvalidArgumentf("catalog entry %d has no key", i)
		}
		if _, exists := catalog.effects[entry.Key]; exists {
			return nil, dngerr.InvalidArgumentf("duplicate catalog key %q", entry.Key).
				WithMeta("key", entry.Key)
		}

		effect, err := reg.Resolve(effects.ID(entry.Effect), entry.Parameters)
		if err != nil {
			if options.skipInvalid {
				slog.Warn("skipping invalid catalog entry",
					"key", entry.Key, "effect_id", entry.Effect, "error", err)
				continue
			}
			return nil, dngerr.Wrapf(err, "catalog entry %q", entry.Key).
				WithMeta("key", entry.Key)
		}
		catalog.effects[entry.Key] = effect
	}

	slog.Info("effect catalog loaded", "entries", len(catalog.effects))
	return catalog, nil
}

// LoadCatalogFile opens path and loads it with LoadCatalog
func LoadCatalogFile(path string, reg *effects.Registry, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open effect catalog %s: %w", path, err)
	}
	defer f.Close()

	catalog, err := LoadCatalog(f, reg, opts...)
	if err != nil {
		return nil, fmt.Errorf("load effect catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Get returns the effect registered under key
func (c *Catalog) Get(key string) (*effects.Effect, error) {
	effect, ok := c.effects[key]
	if !ok {
		return nil, dngerr.NotFoundf("catalog key %s not found", key).
			WithMeta("key", key)
	}
	return effect, nil
}

// Keys returns every key in lexical order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.effects))
	for k := range c.effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of effects in the catalog
func (c *Catalog) Len() int {
	return len(c.effects)
}
