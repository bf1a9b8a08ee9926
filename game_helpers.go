package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Xaric23/TheGameOfLife/engine"
	"github.com/Xaric23/TheGameOfLife/model"
	"github.com/Xaric23/TheGameOfLife/utils"
)

// errFinished signals a clean end of the simulation loop (max generations).
var errFinished = errors.New("simulation finished")

// game bundles everything the driver loop touches.
type game struct {
	config   utils.Config
	evolver  *engine.Evolver
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History
	viewport model.Viewport
	rnd      *rand.Rand
	seedGen  model.Generation // initial generation, kept for restarts
	current  model.Generation
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	log.Infof("seeding randomness with %d", seed)

	var opts []engine.Option
	if config.UseParallel {
		opts = append(opts, engine.WithParallel())
	}
	if config.UseMemoryPool {
		opts = append(opts, engine.WithPool(model.NewGenerationPool()))
	}

	evolver, err := engine.NewEvolver(config.MutationRate, rnd, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build evolver")
	}

	initial, err := initialGeneration(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed the grid")
	}

	return &game{
		config:   config,
		evolver:  evolver,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		history:  &model.History{},
		viewport: model.Viewport{Height: config.Height, Width: config.Width},
		rnd:      rnd,
		seedGen:  initial,
		current:  initial.Clone(),
	}, nil
}

// initialGeneration seeds the grid from the configured preset, or runs the
// interactive prompts when requested.
func initialGeneration(config utils.Config) (model.Generation, error) {
	if config.Interactive {
		return promptSetup(bufio.NewReader(os.Stdin), config)
	}
	return model.LoadPattern(config.Pattern, config.Height/4, config.Width/4)
}

// promptSetup shows the pattern menu and returns the chosen starting
// generation, falling back to the configured preset on bad input.
func promptSetup(reader *bufio.Reader, config utils.Config) (model.Generation, error) {
	names := model.PresetNames()

	fmt.Println("Conway's Game of Life")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("\nAvailable patterns:")
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, titleCase(name))
	}
	fmt.Printf("%d. Create your own cells\n", len(names)+1)
	fmt.Println("\nPress Ctrl+C to exit")

	fmt.Printf("\nSelect a pattern (1-%d): ", len(names)+1)
	choice, err := readInt(reader)
	if err != nil {
		return nil, errors.Wrap(err, "[promptSetup] failed to read pattern selection")
	}

	if choice == len(names)+1 {
		return promptCharacters(reader)
	}

	pattern := config.Pattern
	if choice >= 1 && choice <= len(names) {
		pattern = names[choice-1]
	}
	return model.LoadPattern(pattern, config.Height/4, config.Width/4)
}

// promptCharacters runs character creation: a name, a symbol from the glyph
// set, a color from the palette, then seed positions until a blank line.
// The loop ends at a blank name once at least one cell has been placed.
func promptCharacters(reader *bufio.Reader) (model.Generation, error) {
	var (
		glyphs  = model.Glyphs()
		palette = model.Palette()
		g       = model.NewGeneration()
	)

	for {
		fmt.Print("\nCharacter name (blank to finish): ")
		name, err := readLine(reader)
		if err != nil {
			return drainedInput(g, err)
		}
		if name == "" {
			if g.Population() > 0 {
				return g, nil
			}
			fmt.Println("Place at least one cell first.")
			continue
		}

		fmt.Print("Symbols: ")
		for i, sym := range glyphs {
			fmt.Printf("%d=%c ", i+1, sym)
		}
		fmt.Print("\nPick a symbol: ")
		symbol := glyphs[0]
		n, err := readInt(reader)
		if err != nil {
			return drainedInput(g, err)
		}
		if n >= 1 && n <= len(glyphs) {
			symbol = glyphs[n-1]
		}

		fmt.Print("Colors: ")
		for i, col := range palette {
			fmt.Printf("%d=%s ", i+1, col)
		}
		fmt.Print("\nPick a color: ")
		clr := palette[0]
		n, err = readInt(reader)
		if err != nil {
			return drainedInput(g, err)
		}
		if n >= 1 && n <= len(palette) {
			clr = palette[n-1]
		}

		props := model.CellProperties{Name: name, Symbol: symbol, Color: clr}

		fmt.Println("Cell positions as row,col (blank line to finish):")
		for {
			line, err := readLine(reader)
			if err != nil {
				return drainedInput(g, err)
			}
			if line == "" {
				break
			}
			pos, err := parsePosition(line)
			if err != nil {
				fmt.Printf("Skipping %q: %v\n", line, err)
				continue
			}
			g[pos] = props
		}
	}
}

// drainedInput decides what an exhausted input stream means mid-creation:
// a valid custom generation if any cell was placed, an error otherwise.
func drainedInput(g model.Generation, err error) (model.Generation, error) {
	if g.Population() > 0 {
		return g, nil
	}
	return nil, errors.Wrap(err, "[promptCharacters] input ended before any cell was placed")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// parsePosition parses "row,col" into a Position.
func parsePosition(line string) (model.Position, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return model.Position{}, errors.Errorf("[parsePosition] expected row,col, got: %q", line)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Position{}, errors.Wrapf(err, "[parsePosition] bad row in %q", line)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Position{}, errors.Wrapf(err, "[parsePosition] bad col in %q", line)
	}
	return model.Position{Row: row, Col: col}, nil
}

// readLine returns the next trimmed line. A read failure (EOF, closed stdin)
// surfaces as an error so prompt loops terminate instead of spinning on "".
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", errors.Wrap(err, "[readLine] input exhausted")
	}
	return line, nil
}

// readInt reads a line as an integer. Unparseable input yields 0 so callers
// fall back to their defaults; only a read failure is an error.
func readInt(reader *bufio.Reader) (int, error) {
	line, err := readLine(reader)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, nil
	}
	return n, nil
}

// loop is the driver: render, status, advance, sleep, until the context is
// canceled or the generation limit is reached.
func (g *game) loop(ctx context.Context) error {
	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for generation := 0; ; generation++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		g.renderer.Clear()

		population := g.current.Population()

		// Stagnation check runs against the history *before* this frame is
		// recorded, so a fresh frame never matches itself.
		isStagnant := g.history.IsStagnant(g.current)
		g.history.Push(g.current)
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		g.displayStatus(generation, population, isStagnant, lastRestartGen)
		g.renderer.Display(g.current, g.viewport)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return errFinished
		}

		if restart, reason := checkRestartConditions(population, stagnantCount, generation, g.config); restart && g.config.AutoRestart {
			log.Infof("🔄 restarting due to %s", reason)
			g.restart()
			stagnantCount = 0
			lastRestartGen = generation
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injected := model.InjectRandomLife(g.current, g.rnd, g.viewport, g.config.InjectionCount)
			g.evolver.Recycle(g.current)
			g.current = injected
		}

		next := g.evolver.Advance(g.current)
		births, deaths := countChanges(g.current, next)
		g.stats.Update(generation+1, population, births, deaths, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		g.evolver.Recycle(g.current)
		g.current = next

		timer := time.NewTimer(g.config.FrameRate)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// restart reseeds the grid: the original pattern plus a fresh random fill,
// so a restart never replays the exact board that just stagnated.
func (g *game) restart() {
	g.evolver.Recycle(g.current)

	fresh := g.seedGen.Clone()
	for p, props := range model.RandomGeneration(g.rnd, g.viewport, g.config.RandomDensity) {
		if !fresh.IsAlive(p) {
			fresh[p] = props
		}
	}
	g.current = fresh
	g.history.Reset()
}

// displayStatus shows the current game status
func (g *game) displayStatus(generation, population int, isStagnant bool, lastRestartGen int) {
	density := float64(population) / float64(g.config.Width*g.config.Height) * 100

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if population == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Mutation: %.2f | Status: %s\n",
		generation, population, density, g.config.MutationRate, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation,
		g.stats.PeakPopulation, g.stats.Runtime().Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// countChanges compares two consecutive generations and returns how many
// cells were born and how many died between them.
func countChanges(prev, next model.Generation) (births, deaths int) {
	for p := range next {
		if !prev.IsAlive(p) {
			births++
		}
	}
	for p := range prev {
		if !next.IsAlive(p) {
			deaths++
		}
	}
	return births, deaths
}
