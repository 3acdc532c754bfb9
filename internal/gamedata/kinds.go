package gamedata

import "github.com/gdamore/tcell/v2"

// KindAppearance is how a character or structure kind is drawn.
type KindAppearance struct {
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (k KindAppearance) GlyphRune() rune {
	for _, r := range k.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the kind color, or white if the color is malformed.
func (k KindAppearance) TCellColor() tcell.Color {
	color, err := ParseHexColor(k.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// KindsFile represents the structure of kinds.json.
type KindsFile struct {
	Kinds []KindAppearance `json:"kinds"`
}

// LoadKindAppearances returns the embedded appearances keyed by kind name.
func LoadKindAppearances() (map[string]KindAppearance, error) {
	file, err := Load[KindsFile]("kinds.json")
	if err != nil {
		return nil, err
	}

	byKind := make(map[string]KindAppearance, len(file.Kinds))
	for _, k := range file.Kinds {
		byKind[k.Kind] = k
	}
	return byKind, nil
}
