package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

const (
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// colorsByName maps palette entries to their terminal attributes.
var colorsByName = map[Color]*color.Color{
	ColorGreen:   color.New(color.FgGreen),
	ColorRed:     color.New(color.FgRed),
	ColorBlue:    color.New(color.FgBlue),
	ColorYellow:  color.New(color.FgYellow),
	ColorMagenta: color.New(color.FgMagenta),
	ColorCyan:    color.New(color.FgCyan),
	ColorWhite:   color.New(color.FgWhite),
}

// Viewport is the rectangular window of the unbounded grid that gets drawn.
// The live set itself is never clipped; a glider that walks out of view keeps
// evolving off screen.
type Viewport struct {
	Row    int
	Col    int
	Height int
	Width  int
}

// Contains reports whether the position falls inside the viewport.
func (v Viewport) Contains(p Position) bool {
	return p.Row >= v.Row && p.Row < v.Row+v.Height &&
		p.Col >= v.Col && p.Col < v.Col+v.Width
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the viewport of the generation to the terminal, one colored
// glyph per live cell. The generation is read-only to the renderer.
func (r *TerminalRenderer) Display(g Generation, v Viewport) {
	var row strings.Builder
	for y := v.Row; y < v.Row+v.Height; y++ {
		row.Reset()
		for x := v.Col; x < v.Col+v.Width; x++ {
			props, alive := g.PropertiesOf(Position{Row: y, Col: x})
			if !alive {
				row.WriteString(gridPosEmpty)
				continue
			}
			row.WriteString(renderCell(props))
		}
		fmt.Println(row.String())
	}
}

// renderCell returns the two-column colored glyph for a live cell.
func renderCell(props CellProperties) string {
	cell := string(props.Symbol) + " "
	c, ok := colorsByName[props.Color]
	if !ok {
		return cell
	}
	return c.Sprint(cell)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
