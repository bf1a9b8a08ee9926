package model

import "math/rand"

// RandomGeneration fills the viewport with random live cells at the given
// density, each carrying a random palette color. The live set stays sparse;
// nothing outside the viewport is touched.
func RandomGeneration(rnd *rand.Rand, v Viewport, density float64) Generation {
	g := NewGeneration()
	palette := Palette()
	for row := v.Row; row < v.Row+v.Height; row++ {
		for col := v.Col; col < v.Col+v.Width; col++ {
			if rnd.Float64() < density {
				props := DefaultProperties()
				props.Color = palette[rnd.Intn(len(palette))]
				g[Position{Row: row, Col: col}] = props
			}
		}
	}
	return g
}

// InjectRandomLife returns a copy of the generation with count random cells
// added inside the viewport to break stagnation. The input is not modified.
func InjectRandomLife(g Generation, rnd *rand.Rand, v Viewport, count int) Generation {
	out := g.Clone()
	palette := Palette()
	for i := 0; i < count; i++ {
		p := Position{
			Row: v.Row + rnd.Intn(v.Height),
			Col: v.Col + rnd.Intn(v.Width),
		}
		props := DefaultProperties()
		props.Color = palette[rnd.Intn(len(palette))]
		out[p] = props
	}
	return out
}
