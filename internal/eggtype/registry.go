package eggtype

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/logger"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Source provides the remote egg_types rows
type Source interface {
	ListEggTypes(ctx context.Context) ([]domain.EggTypeRow, error)
}

type tableFile struct {
	EggTypes []domain.EggTypeConfig `yaml:"egg_types"`
}

// Registry maps elements to their hatch thresholds.
// Reads never fail: unknown elements resolve to the default element.
type Registry struct {
	mu    sync.RWMutex
	types map[domain.Element]domain.EggTypeConfig
	order []domain.Element
}

// NewRegistry builds a registry from the embedded default table
func NewRegistry() (*Registry, error) {
	return Parse(defaultsYAML)
}

// LoadFile builds a registry from a YAML table on disk
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read egg types file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a registry from YAML. Every entry must satisfy 0 < crack < hatch
// and the default element must be present.
func Parse(data []byte) (*Registry, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse egg types: %w", err)
	}

	r := &Registry{types: make(map[domain.Element]domain.EggTypeConfig, len(file.EggTypes))}
	for _, cfg := range file.EggTypes {
		if cfg.Element == "" {
			return nil, fmt.Errorf("%w: entry without element", domain.ErrEggTypeInvalid)
		}
		if !cfg.Valid() {
			return nil, fmt.Errorf("%w: %s (hatch=%v crack=%v)", domain.ErrEggTypeInvalid, cfg.Element, cfg.HatchHours, cfg.CrackAtHours)
		}
		if _, dup := r.types[cfg.Element]; !dup {
			r.order = append(r.order, cfg.Element)
		}
		r.types[cfg.Element] = cfg
	}
	if _, ok := r.types[domain.DefaultElement]; !ok {
		return nil, fmt.Errorf("%w: default element %s missing", domain.ErrEggTypeInvalid, domain.DefaultElement)
	}
	return r, nil
}

// Get returns the config for element, falling back to the default element
func (r *Registry) Get(element domain.Element) domain.EggTypeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.types[element]; ok {
		return cfg
	}
	return r.types[domain.DefaultElement]
}

// Elements lists the known elements in table order
func (r *Registry) Elements() []domain.Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// ApplyRemoteOverrides merges egg_types rows into the table.
// Unknown elements and nil fields are skipped. A field whose new value would
// break 0 < crack < hatch is skipped on its own. Returns the number of fields applied.
func (r *Registry) ApplyRemoteOverrides(ctx context.Context, rows []domain.EggTypeRow) int {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	applied := 0
	for _, row := range rows {
		cur, ok := r.types[row.Element]
		if !ok {
			continue
		}

		next := cur
		if row.HatchHours != nil {
			next.HatchHours = *row.HatchHours
		}
		if row.CrackAtHours != nil {
			next.CrackAtHours = *row.CrackAtHours
		}

		if !next.Valid() {
			// Fall back to whichever single field still keeps the thresholds ordered
			next = cur
			if row.HatchHours != nil {
				if c := withHatch(next, *row.HatchHours); c.Valid() {
					next = c
				} else {
					log.Warn("Skipping egg type override", "element", row.Element, "field", "hatch_hours", "value", *row.HatchHours)
				}
			}
			if row.CrackAtHours != nil {
				if c := withCrack(next, *row.CrackAtHours); c.Valid() {
					next = c
				} else {
					log.Warn("Skipping egg type override", "element", row.Element, "field", "crack_at_hours", "value", *row.CrackAtHours)
				}
			}
		}

		if next.HatchHours != cur.HatchHours {
			applied++
		}
		if next.CrackAtHours != cur.CrackAtHours {
			applied++
		}
		r.types[row.Element] = next
	}
	return applied
}

func withHatch(c domain.EggTypeConfig, hours float64) domain.EggTypeConfig {
	c.HatchHours = hours
	return c
}

func withCrack(c domain.EggTypeConfig, hours float64) domain.EggTypeConfig {
	c.CrackAtHours = hours
	return c
}

// Load fetches remote overrides. A failed fetch keeps the local table and is only logged.
func (r *Registry) Load(ctx context.Context, src Source) {
	log := logger.FromContext(ctx)

	rows, err := src.ListEggTypes(ctx)
	if err != nil {
		log.Warn("Failed to load egg types, using local defaults", "error", err)
		return
	}
	n := r.ApplyRemoteOverrides(ctx, rows)
	log.Info("Egg types loaded", "rows", len(rows), "fields_applied", n)
}
