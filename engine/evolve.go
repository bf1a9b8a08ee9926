package engine

import (
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Xaric23/TheGameOfLife/model"
	"github.com/Xaric23/TheGameOfLife/rules"
)

// ErrInvalidMutationRate is returned when a mutation rate falls outside
// [0.0, 1.0]. The engine never clamps.
var ErrInvalidMutationRate = errors.New("mutation rate must be within [0.0, 1.0]")

// RandomSource is the injected source of randomness. *rand.Rand satisfies it;
// tests inject scripted sources to pin down exact outcomes.
//
// Draw order per candidate position, iterated in row-major order:
// one Float64 for the survival flip, then, for final-alive cells only, one
// Float64 for the property flip followed by one Intn per palette when the
// flip triggers. A mutation rate of exactly 0 consumes no randomness at all.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Advance computes the next generation from the current one, validating the
// mutation rate on every call. The current generation is never modified.
func Advance(current model.Generation, mutationRate float64, rnd RandomSource) (model.Generation, error) {
	if err := validateRate(mutationRate); err != nil {
		return nil, errors.Wrap(err, "[Advance]")
	}

	e := &Evolver{rate: mutationRate, rnd: rnd}
	return e.next(current), nil
}

// Evolver is a reusable engine with the mutation rate validated once at
// construction. Options add a generation pool and the parallel baseline path.
type Evolver struct {
	rate     float64
	rnd      RandomSource
	parallel bool
	pool     *model.GenerationPool
}

// Option configures an Evolver.
type Option func(*Evolver)

// WithParallel enables the parallel baseline path. It only takes effect when
// the mutation rate is 0: no randomness is consumed then, candidate outcomes
// are position-disjoint, and the result is identical to the sequential path.
func WithParallel() Option {
	return func(e *Evolver) { e.parallel = true }
}

// WithPool sources result generations from the pool; pair with Recycle.
func WithPool(pool *model.GenerationPool) Option {
	return func(e *Evolver) { e.pool = pool }
}

// NewEvolver validates the mutation rate and returns a configured engine.
func NewEvolver(mutationRate float64, rnd RandomSource, opts ...Option) (*Evolver, error) {
	if err := validateRate(mutationRate); err != nil {
		return nil, errors.Wrap(err, "[NewEvolver]")
	}

	e := &Evolver{rate: mutationRate, rnd: rnd}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Advance computes the next generation. See the package-level Advance for the
// contract; the rate was validated at construction.
func (e *Evolver) Advance(current model.Generation) model.Generation {
	return e.next(current)
}

// Recycle returns a spent generation to the pool, if one is configured.
func (e *Evolver) Recycle(g model.Generation) {
	model.GenerationToPool(g, e.pool)
}

func validateRate(rate float64) error {
	if rate < 0.0 || rate > 1.0 {
		return errors.Wrapf(ErrInvalidMutationRate, "got %v", rate)
	}
	return nil
}

// liveCell pairs a final-alive position with its derived properties.
type liveCell struct {
	pos   model.Position
	props model.CellProperties
}

func (e *Evolver) next(current model.Generation) model.Generation {
	candidates := candidatePositions(current)

	var next model.Generation
	if e.pool != nil {
		next = e.pool.Get()
	} else {
		next = make(model.Generation, len(current))
	}

	if e.parallel && e.rate == 0.0 {
		e.nextParallel(current, candidates, next)
		return next
	}

	for _, p := range candidates {
		if props, alive := e.evolveCell(current, p); alive {
			next[p] = props
		}
	}
	return next
}

// nextParallel partitions the sorted candidate list across workers. Only
// reached at rate 0, where evolveCell reads current and nothing else.
func (e *Evolver) nextParallel(current model.Generation, candidates []model.Position, next model.Generation) {
	var (
		eg         errgroup.Group
		numWorkers = runtime.NumCPU()
		perWorker  = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		partials   = make([][]liveCell, numWorkers)
	)
	if perWorker == 0 {
		return
	}

	for i := 0; i < numWorkers; i++ {
		var (
			worker = i
			start  = i * perWorker
			end    = min(start+perWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			born := make([]liveCell, 0, end-start)
			for _, p := range candidates[start:end] {
				if props, alive := e.evolveCell(current, p); alive {
					born = append(born, liveCell{pos: p, props: props})
				}
			}
			partials[worker] = born
			return nil
		})
	}

	// Workers never fail; Wait is only a barrier here.
	_ = eg.Wait()

	for _, part := range partials {
		for _, c := range part {
			next[c.pos] = c.props
		}
	}
}

// evolveCell decides one candidate position: baseline rule, survival flip,
// then property derivation for final-alive cells.
func (e *Evolver) evolveCell(current model.Generation, p model.Position) (model.CellProperties, bool) {
	wasAlive := current.IsAlive(p)
	outcome := rules.ApplyConwayRules(countLiveNeighbors(current, p), wasAlive)

	if e.rate > 0.0 && e.rnd.Float64() < e.rate {
		outcome = !outcome
	}
	if !outcome {
		return model.CellProperties{}, false
	}

	props := e.baseProperties(current, p, wasAlive)
	if e.rate > 0.0 && e.rnd.Float64() < e.rate {
		props = e.mutateProperties(props)
	}
	return props, true
}

// baseProperties carries a survivor's value forward, or derives a newborn's
// by inheritance from the first live neighbor in row-major order. A newborn
// with no live neighbor gets the defaults.
func (e *Evolver) baseProperties(current model.Generation, p model.Position, wasAlive bool) model.CellProperties {
	if wasAlive {
		props, _ := current.PropertiesOf(p)
		return props
	}

	for _, n := range p.Neighbors() {
		if props, ok := current.PropertiesOf(n); ok {
			return props
		}
	}
	return model.DefaultProperties()
}

// mutateProperties redraws symbol and color from the palettes; the name
// carries over. Always a new value, never an edit of the template.
func (e *Evolver) mutateProperties(props model.CellProperties) model.CellProperties {
	var (
		glyphs  = model.Glyphs()
		palette = model.Palette()
	)
	props.Symbol = glyphs[e.rnd.Intn(len(glyphs))]
	props.Color = palette[e.rnd.Intn(len(palette))]
	return props
}

// candidatePositions returns the union of live positions and their Moore
// neighbors, sorted row-major. Dead cells with no live neighbor can never
// change state and are not enumerated.
func candidatePositions(current model.Generation) []model.Position {
	seen := make(map[model.Position]struct{}, len(current)*9)
	for p := range current {
		seen[p] = struct{}{}
		for _, n := range p.Neighbors() {
			seen[n] = struct{}{}
		}
	}

	candidates := make([]model.Position, 0, len(seen))
	for p := range seen {
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})
	return candidates
}

// countLiveNeighbors counts live cells in the Moore neighborhood.
func countLiveNeighbors(current model.Generation, p model.Position) int {
	count := 0
	for _, n := range p.Neighbors() {
		if current.IsAlive(n) {
			count++
		}
	}
	return count
}
