package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/poorguelike/internal/gamedata"
	"github.com/samdwyer/poorguelike/internal/world"
)

// Stair glyphs in the text dump.
const (
	dumpStairUp   = "▲"
	dumpStairDown = "▼"
)

// DumpOptions controls the text dump.
type DumpOptions struct {
	// Color wraps glyphs in 24-bit ANSI colors from the catalogs.
	Color bool
	// Kinds draws occupants over terrain when set.
	Kinds map[string]gamedata.KindAppearance
}

// Dump writes every room of w as text: a "Room N" header, then one
// tab-indented line per row. Stairs win over occupants, occupants over terrain.
func Dump(out io.Writer, w *world.World, terrains *gamedata.TerrainRegistry, opts DumpOptions) error {
	var sb strings.Builder

	for i, room := range w.Rooms {
		fmt.Fprintf(&sb, "Room %d\n", i+1)
		for y := 0; y < room.Height; y++ {
			sb.WriteByte('\t')
			for x := 0; x < room.Width; x++ {
				cell, _ := room.Cell(x, y)
				glyph, hex := dumpLook(cell, terrains, opts.Kinds)
				sb.WriteString(paint(glyph, hex, opts.Color))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// dumpLook returns the glyph and hex color for one cell.
func dumpLook(cell world.Cell, terrains *gamedata.TerrainRegistry, kinds map[string]gamedata.KindAppearance) (string, string) {
	switch cell.Stair {
	case world.StairUp:
		return dumpStairUp, "#FFFF00"
	case world.StairDown:
		return dumpStairDown, "#FFFF00"
	}

	if kinds != nil && len(cell.Occupants) > 0 {
		top := cell.Occupants[len(cell.Occupants)-1]
		if look, ok := kinds[top.Kind.String()]; ok {
			return string(look.GlyphRune()), look.Color
		}
	}

	def := terrains.Get(cell.Terrain)
	if def == nil {
		return "?", ""
	}
	return string(def.GlyphRune()), def.Color
}

// paint colors glyph when enabled and hex is a valid color.
func paint(glyph, hex string, enabled bool) string {
	if !enabled {
		return glyph
	}
	if _, err := gamedata.ParseHexColor(hex); err != nil {
		return glyph
	}
	return color.HEX(hex).Sprint(glyph)
}
