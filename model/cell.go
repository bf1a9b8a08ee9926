package model

import "sort"

// Position identifies a single cell on the logically unbounded grid.
// Row-major order (Row ascending, then Col ascending) is the canonical
// iteration order throughout the engine.
type Position struct {
	Row int
	Col int
}

// neighborOffsets covers the Moore neighborhood in row-major order.
// Inheritance relies on this ordering for its tie-break.
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 positions at Chebyshev distance 1, in row-major
// order, regardless of whether those positions are alive.
func (p Position) Neighbors() [8]Position {
	var out [8]Position
	for i, d := range neighborOffsets {
		out[i] = Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	}
	return out
}

// Less reports whether p sorts before q in row-major order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Color names an entry in the terminal palette.
type Color string

const (
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorYellow  Color = "yellow"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
)

// CellProperties bundles the identity and look of a live cell. Treated as a
// value: derivation (inheritance, mutation) always constructs a new instance,
// never an in-place edit of a neighbor's properties.
type CellProperties struct {
	Name   string `json:"name"`
	Symbol rune   `json:"symbol"`
	Color  Color  `json:"color"`
}

// DefaultProperties returns the properties assigned to preset patterns and to
// spontaneous births with no live neighbor to inherit from.
func DefaultProperties() CellProperties {
	return CellProperties{Symbol: '█', Color: ColorGreen}
}

// Glyphs returns the allowed display symbols for character creation and
// property mutation, in palette order.
func Glyphs() []rune {
	return []rune{'█', '◆', '●', '☻', '♥', '*', '#', '@', '+', 'o'}
}

// Palette returns the allowed colors, in palette order.
func Palette() []Color {
	return []Color{
		ColorGreen, ColorRed, ColorBlue, ColorYellow,
		ColorMagenta, ColorCyan, ColorWhite,
	}
}

// Generation maps every live position to its properties; absence of a key
// means the cell is dead. A Generation is an immutable snapshot once handed
// to the engine or the renderer.
type Generation map[Position]CellProperties

// NewGeneration returns an empty generation.
func NewGeneration() Generation {
	return make(Generation)
}

// FromPositions builds a generation with every given position alive and
// carrying the same properties.
func FromPositions(positions []Position, props CellProperties) Generation {
	g := make(Generation, len(positions))
	for _, p := range positions {
		g[p] = props
	}
	return g
}

// IsAlive reports whether the position is live in this generation.
func (g Generation) IsAlive(p Position) bool {
	_, ok := g[p]
	return ok
}

// PropertiesOf returns the stored properties if the position is alive.
// A dead position is a normal "not found" outcome, not an error.
func (g Generation) PropertiesOf(p Position) (CellProperties, bool) {
	props, ok := g[p]
	return props, ok
}

// LivePositions returns every live position in row-major order.
func (g Generation) LivePositions() []Position {
	positions := make([]Position, 0, len(g))
	for p := range g {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
	return positions
}

// Population returns the number of live cells.
func (g Generation) Population() int {
	return len(g)
}

// Clone returns an independent copy of the generation.
func (g Generation) Clone() Generation {
	out := make(Generation, len(g))
	for p, props := range g {
		out[p] = props
	}
	return out
}
