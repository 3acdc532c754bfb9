package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// TerrainGroup partitions terrain variants by behavior. Variants inside a
// group differ only in how they look.
type TerrainGroup string

const (
	// GroupGround variants can be walked on.
	GroupGround TerrainGroup = "ground"
	// GroupWall variants block movement.
	GroupWall TerrainGroup = "wall"
)

// TerrainDef describes one terrain variant loaded from JSON.
type TerrainDef struct {
	ID          string       `json:"id"`          // Unique identifier (e.g., "grass1")
	Name        string       `json:"name"`        // Display name
	Group       TerrainGroup `json:"group"`       // ground or wall
	Traversable bool         `json:"traversable"` // Whether characters may stand on it
	Glyph       string       `json:"glyph"`       // Single character for rendering
	Color       string       `json:"color"`       // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TerrainDef) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the terrain color, or white if the color is malformed.
func (t *TerrainDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TerrainsFile represents the structure of terrains.json.
type TerrainsFile struct {
	Terrains []TerrainDef `json:"terrains"`
}

// LoadTerrains loads terrain definitions from the embedded terrains.json file.
func LoadTerrains() ([]TerrainDef, error) {
	return LoadTerrainsFS(dataFS, "terrains.json")
}

// LoadTerrainsFS loads terrain definitions from an arbitrary filesystem.
func LoadTerrainsFS(fsys fs.FS, filename string) ([]TerrainDef, error) {
	file, err := LoadFS[TerrainsFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	return file.Terrains, nil
}

// validate checks that a definition's traversability agrees with its group.
func (t *TerrainDef) validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: terrain without id", ErrInvalidCatalog)
	}
	switch t.Group {
	case GroupGround:
		if !t.Traversable {
			return fmt.Errorf("%w: ground terrain %q is not traversable", ErrInvalidCatalog, t.ID)
		}
	case GroupWall:
		if t.Traversable {
			return fmt.Errorf("%w: wall terrain %q is traversable", ErrInvalidCatalog, t.ID)
		}
	default:
		return fmt.Errorf("%w: terrain %q has unknown group %q", ErrInvalidCatalog, t.ID, t.Group)
	}
	return nil
}
