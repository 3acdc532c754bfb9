package gamedata

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when loaded data breaks a catalog invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// TerrainID is a compact tag indexing the registry's shared terrain table.
// Cells store the tag instead of their own copy of the descriptor.
type TerrainID uint8

// TerrainRegistry holds the shared terrain table and its group partitions.
type TerrainRegistry struct {
	terrains []TerrainDef
	byName   map[string]TerrainID
	ground   []TerrainID
	walls    []TerrainID
}

// NewTerrainRegistry validates definitions and builds a registry.
// Both the ground and wall groups must be non-empty.
func NewTerrainRegistry(defs []TerrainDef) (*TerrainRegistry, error) {
	if len(defs) > 256 {
		return nil, fmt.Errorf("%w: %d terrains exceed the tag range", ErrInvalidCatalog, len(defs))
	}

	r := &TerrainRegistry{
		terrains: make([]TerrainDef, len(defs)),
		byName:   make(map[string]TerrainID, len(defs)),
	}
	copy(r.terrains, defs)

	for i := range r.terrains {
		def := &r.terrains[i]
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate terrain %q", ErrInvalidCatalog, def.ID)
		}

		id := TerrainID(i)
		r.byName[def.ID] = id
		if def.Group == GroupWall {
			r.walls = append(r.walls, id)
		} else {
			r.ground = append(r.ground, id)
		}
	}

	if len(r.ground) == 0 {
		return nil, fmt.Errorf("%w: no ground terrains", ErrInvalidCatalog)
	}
	if len(r.walls) == 0 {
		return nil, fmt.Errorf("%w: no wall terrains", ErrInvalidCatalog)
	}
	return r, nil
}

// LoadTerrainRegistry loads and creates a registry from the embedded terrains.json.
func LoadTerrainRegistry() (*TerrainRegistry, error) {
	defs, err := LoadTerrains()
	if err != nil {
		return nil, err
	}
	return NewTerrainRegistry(defs)
}

// MustLoadTerrainRegistry loads a registry, panicking on error.
func MustLoadTerrainRegistry() *TerrainRegistry {
	registry, err := LoadTerrainRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the definition for a tag, or nil if the tag is unknown.
func (r *TerrainRegistry) Get(id TerrainID) *TerrainDef {
	if int(id) >= len(r.terrains) {
		return nil
	}
	return &r.terrains[id]
}

// ByName returns the tag of the terrain with the given identifier.
func (r *TerrainRegistry) ByName(name string) (TerrainID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Ground returns the tags of all ground variants in catalog order.
func (r *TerrainRegistry) Ground() []TerrainID {
	return r.ground
}

// Walls returns the tags of all wall variants in catalog order.
func (r *TerrainRegistry) Walls() []TerrainID {
	return r.walls
}

// IsWall reports whether the tag belongs to the wall group.
func (r *TerrainRegistry) IsWall(id TerrainID) bool {
	def := r.Get(id)
	return def != nil && def.Group == GroupWall
}

// IsTraversable reports whether the tag can be walked on. Unknown tags are not.
func (r *TerrainRegistry) IsTraversable(id TerrainID) bool {
	def := r.Get(id)
	return def != nil && def.Traversable
}

// Count returns the number of terrain variants.
func (r *TerrainRegistry) Count() int {
	return len(r.terrains)
}
