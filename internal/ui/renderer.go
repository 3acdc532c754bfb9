package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/poorguelike/internal/entity"
	"github.com/samdwyer/poorguelike/internal/gamedata"
	"github.com/samdwyer/poorguelike/internal/world"
)

// Canvas is the drawing surface a Renderer writes to. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Terminal is the interactive surface the session loop runs on: a Canvas
// that also delivers events. *Screen implements it.
type Terminal interface {
	Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Stair glyphs on the interactive screen.
const (
	glyphStairUp   = '<'
	glyphStairDown = '>'
)

// Renderer handles drawing the current room to a canvas.
type Renderer struct {
	canvas   Canvas
	terrains *gamedata.TerrainRegistry
	kinds    map[string]gamedata.KindAppearance
}

// NewRenderer creates a renderer for the given canvas and catalogs.
func NewRenderer(canvas Canvas, terrains *gamedata.TerrainRegistry, kinds map[string]gamedata.KindAppearance) *Renderer {
	return &Renderer{
		canvas:   canvas,
		terrains: terrains,
		kinds:    kinds,
	}
}

// Render draws the room terrain and stairs, then the characters on top, then
// a status line under the room.
func (r *Renderer) Render(room *world.Room, characters []entity.Character, status string) {
	r.canvas.Clear()

	for y := 0; y < room.Height; y++ {
		for x := 0; x < room.Width; x++ {
			cell, _ := room.Cell(x, y)
			glyph, style := r.cellLook(cell)
			r.canvas.SetContent(x, y, glyph, style)
		}
	}

	for _, c := range characters {
		look, ok := r.kinds[c.Kind.String()]
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(look.TCellColor()).Bold(c.Kind == entity.KindPlayer)
		r.canvas.SetContent(c.Pos.X, c.Pos.Y, look.GlyphRune(), style)
	}

	r.renderMessage(status, room.Height+1)
	r.canvas.Show()
}

// cellLook returns the glyph and style for a cell without occupants.
func (r *Renderer) cellLook(cell world.Cell) (rune, tcell.Style) {
	switch cell.Stair {
	case world.StairUp:
		return glyphStairUp, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.StairDown:
		return glyphStairDown, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}

	def := r.terrains.Get(cell.Terrain)
	if def == nil {
		return '?', tcell.StyleDefault
	}
	return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
}

// renderMessage writes a line of text starting at column 0.
func (r *Renderer) renderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
