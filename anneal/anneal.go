// Package anneal is the reference implementation of the solver.Sampler
// boundary: a deterministic, seeded simulated annealer over a QUBO
// coefficient map.
//
// The annealer runs several independent restarts. Each restart starts from a
// random bit assignment and performs full sweeps over the variables; a
// proposed single-bit flip is accepted when it lowers the energy or, with
// Metropolis probability exp(−Δ/T), when it raises it. The temperature
// follows a geometric schedule T ← T·CoolingRate per sweep. The best
// assignment of every restart is recorded and the results are returned
// ordered by energy, best first — solver.Solve consumes the first one.
//
// Determinism:
//   - seed==0 ⇒ a fixed default seed (same policy as the down-sampling in
//     cvrp); identical inputs and options always produce identical output.
//   - restart streams are derived with a SplitMix64-style mix so they stay
//     decorrelated without any time-based randomness.
//
// Concurrency: an Annealer is stateless between calls and safe for
// concurrent use; each Sample call owns its RNGs and scratch buffers.
package anneal

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qroute/qubo"
)

// Sentinel errors returned by New and Sample.
var (
	// ErrEmptyQUBO indicates that Sample received a map with no entries.
	ErrEmptyQUBO = errors.New("anneal: empty qubo")

	// ErrBadSweeps indicates a non-positive sweep count.
	ErrBadSweeps = errors.New("anneal: sweeps must be positive")

	// ErrBadRestarts indicates a non-positive restart count.
	ErrBadRestarts = errors.New("anneal: restarts must be positive")

	// ErrBadCooling indicates a cooling rate outside (0, 1).
	ErrBadCooling = errors.New("anneal: cooling rate must be in (0, 1)")

	// ErrBadTemperature indicates a negative initial temperature.
	ErrBadTemperature = errors.New("anneal: initial temperature must be non-negative")
)

// defaultSeed is the fixed "zero" seed used when Options.Seed == 0.
const defaultSeed int64 = 1

// Default schedule parameters; chosen so that small geographic instances
// with the default qubo constants reliably reach a feasible ground basin.
const (
	DefaultSweeps      = 1000
	DefaultRestarts    = 10
	DefaultCoolingRate = 0.97
)

// Options configures an Annealer.
//
// Seed        – RNG seed; 0 ⇒ fixed default seed (deterministic default).
// Sweeps      – full variable sweeps per restart.
// Restarts    – independent restarts; one result per restart is returned.
// InitialTemp – starting temperature; 0 ⇒ auto-scale to the largest
// absolute coefficient of the QUBO under anneal.
// CoolingRate – geometric cooling factor per sweep, in (0, 1).
type Options struct {
	Seed        int64   // deterministic stream selector
	Sweeps      int     // sweeps per restart
	Restarts    int     // independent restarts
	InitialTemp float64 // starting temperature (0 = auto)
	CoolingRate float64 // per-sweep geometric cooling factor
}

// Option is a functional option for configuring an Annealer.
type Option func(*Options)

// WithSeed fixes the RNG seed (0 keeps the deterministic default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSweeps overrides the per-restart sweep count.
func WithSweeps(n int) Option {
	return func(o *Options) {
		o.Sweeps = n
	}
}

// WithRestarts overrides the restart count.
func WithRestarts(n int) Option {
	return func(o *Options) {
		o.Restarts = n
	}
}

// WithInitialTemp overrides the starting temperature (0 = auto-scale).
func WithInitialTemp(t float64) Option {
	return func(o *Options) {
		o.InitialTemp = t
	}
}

// WithCoolingRate overrides the geometric cooling factor.
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		o.CoolingRate = r
	}
}

// DefaultOptions returns the canonical annealing schedule, optionally
// adjusted by functional options.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Seed:        0,
		Sweeps:      DefaultSweeps,
		Restarts:    DefaultRestarts,
		InitialTemp: 0, // auto-scale
		CoolingRate: DefaultCoolingRate,
	}

	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// Annealer is a deterministic simulated-annealing sampler over QUBO maps.
// It implements solver.Sampler.
type Annealer struct {
	opts Options
}

// New validates opts and returns a ready Annealer.
//
// Errors: ErrBadSweeps, ErrBadRestarts, ErrBadCooling, ErrBadTemperature.
func New(opts Options) (*Annealer, error) {
	if opts.Sweeps <= 0 {
		return nil, ErrBadSweeps
	}
	if opts.Restarts <= 0 {
		return nil, ErrBadRestarts
	}
	if opts.CoolingRate <= 0 || opts.CoolingRate >= 1 {
		return nil, ErrBadCooling
	}
	if opts.InitialTemp < 0 {
		return nil, ErrBadTemperature
	}

	return &Annealer{opts: opts}, nil
}

// coupling is one off-diagonal neighbor entry of the flattened problem.
type coupling struct {
	j int     // neighbor variable index
	w float64 // pair coefficient
}

// problem is the flattened, index-based view of a QUBO used by the
// annealing loop: variables sorted for determinism, linear terms on the
// diagonal, symmetric neighbor lists for O(deg) flip deltas.
type problem struct {
	vars      []qubo.Var   // index → variable, sorted by (Step, Dest)
	linear    []float64    // diagonal coefficients
	neighbors [][]coupling // off-diagonal couplings, both directions
}

// Sample anneals q and returns one assignment per restart, ordered by
// energy, best first. The input map is never mutated.
//
// Errors: ErrEmptyQUBO.
//
// Complexity: O(Restarts·Sweeps·(V + C)) time where V is the variable count
// and C the number of off-diagonal couplings, plus O(V + C) setup.
func (a *Annealer) Sample(q qubo.QUBO) ([]qubo.Assignment, error) {
	// Stage 1: flatten the map into an index-based problem.
	pr, err := flatten(q)
	if err != nil {
		return nil, err
	}

	// Stage 2: temperature scale (auto = largest absolute coefficient).
	t0 := a.opts.InitialTemp
	if t0 == 0 {
		t0 = maxAbsCoefficient(q)
	}

	// Stage 3: independent restarts with derived RNG streams.
	seed := a.opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	type result struct {
		bits   []uint8
		energy float64
	}
	results := make([]result, a.opts.Restarts)

	var restart int
	for restart = 0; restart < a.opts.Restarts; restart++ {
		rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(restart))))
		bits, energy := a.annealOnce(pr, rng, t0)
		results[restart] = result{bits: bits, energy: energy}
	}

	// Stage 4: best-first ordering (stable for deterministic ties).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].energy < results[j].energy
	})

	out := make([]qubo.Assignment, len(results))
	var (
		r   int
		i   int
		asg qubo.Assignment
	)
	for r = 0; r < len(results); r++ {
		asg = make(qubo.Assignment, len(pr.vars))
		for i = 0; i < len(pr.vars); i++ {
			asg[pr.vars[i]] = int(results[r].bits[i])
		}
		out[r] = asg
	}

	return out, nil
}

// annealOnce runs one restart: random start, Sweeps full sweeps with
// Metropolis acceptance and geometric cooling, tracking the best visited
// state. Returns the best bit vector and its energy.
//
// Complexity: O(Sweeps·(V + C)).
func (a *Annealer) annealOnce(pr problem, rng *rand.Rand, t0 float64) ([]uint8, float64) {
	n := len(pr.vars)

	// Random initial state.
	var (
		bits = make([]uint8, n)
		i    int
	)
	for i = 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			bits[i] = 1
		}
	}
	energy := energyOf(pr, bits)

	var (
		best       = make([]uint8, n)
		bestEnergy = energy
		temp       = t0
		sweep      int
		delta      float64
	)
	copy(best, bits)

	for sweep = 0; sweep < a.opts.Sweeps; sweep++ {
		for i = 0; i < n; i++ {
			delta = flipDelta(pr, bits, i)
			// Metropolis acceptance: always take improvements, sometimes
			// accept uphill moves while the temperature is high.
			if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
				bits[i] ^= 1
				energy += delta
				if energy < bestEnergy {
					bestEnergy = energy
					copy(best, bits)
				}
			}
		}
		temp *= a.opts.CoolingRate
	}

	return best, bestEnergy
}

// flipDelta returns the energy change of flipping variable i in bits:
// Δ = s·(linear[i] + Σ_{j∈N(i)} w_ij·x_j), s = +1 for 0→1 and −1 for 1→0.
// Complexity: O(deg(i)).
func flipDelta(pr problem, bits []uint8, i int) float64 {
	var (
		field = pr.linear[i]
		nb    coupling
	)
	for _, nb = range pr.neighbors[i] {
		if bits[nb.j] == 1 {
			field += nb.w
		}
	}
	if bits[i] == 1 {
		return -field
	}

	return field
}

// energyOf evaluates the full energy of bits under pr: linear terms plus
// each off-diagonal coupling once.
// Complexity: O(V + C).
func energyOf(pr problem, bits []uint8) float64 {
	var (
		sum float64
		i   int
		nb  coupling
	)
	for i = 0; i < len(pr.vars); i++ {
		if bits[i] == 0 {
			continue
		}
		sum += pr.linear[i]
		// neighbors store each coupling in both directions; halve by only
		// counting pairs where i < j.
		for _, nb = range pr.neighbors[i] {
			if nb.j > i && bits[nb.j] == 1 {
				sum += nb.w
			}
		}
	}

	return sum
}

// flatten converts q into the index-based problem view. Variables are sorted
// by (Step, Dest) so the flattening is deterministic regardless of map
// iteration order.
//
// Errors: ErrEmptyQUBO.
//
// Complexity: O((V + C)·log V).
func flatten(q qubo.QUBO) (problem, error) {
	if len(q) == 0 {
		return problem{}, ErrEmptyQUBO
	}

	// Collect the distinct variables.
	var (
		seen = make(map[qubo.Var]struct{}, 2*len(q))
		p    qubo.Pair
	)
	for p = range q {
		seen[p.A] = struct{}{}
		seen[p.B] = struct{}{}
	}
	vars := make([]qubo.Var, 0, len(seen))
	var v qubo.Var
	for v = range seen {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool {
		if vars[i].Step != vars[j].Step {
			return vars[i].Step < vars[j].Step
		}
		return vars[i].Dest < vars[j].Dest
	})

	idx := make(map[qubo.Var]int, len(vars))
	var i int
	for i = 0; i < len(vars); i++ {
		idx[vars[i]] = i
	}

	// Split coefficients into linear terms and symmetric neighbor lists.
	pr := problem{
		vars:      vars,
		linear:    make([]float64, len(vars)),
		neighbors: make([][]coupling, len(vars)),
	}
	var (
		w    float64
		a, b int
	)
	for p, w = range q {
		a = idx[p.A]
		b = idx[p.B]
		if a == b {
			pr.linear[a] += w
			continue
		}
		pr.neighbors[a] = append(pr.neighbors[a], coupling{j: b, w: w})
		pr.neighbors[b] = append(pr.neighbors[b], coupling{j: a, w: w})
	}

	// Deterministic neighbor order (map iteration order leaks in otherwise).
	for i = 0; i < len(pr.neighbors); i++ {
		nb := pr.neighbors[i]
		sort.Slice(nb, func(x, y int) bool { return nb[x].j < nb[y].j })
	}

	return pr, nil
}

// maxAbsCoefficient returns the largest |coefficient| of q, or 1 when all
// coefficients are zero (any positive scale works for a flat landscape).
// Complexity: O(|q|).
func maxAbsCoefficient(q qubo.QUBO) float64 {
	var (
		maxAbs float64
		w      float64
	)
	for _, w = range q {
		if w < 0 {
			w = -w
		}
		if w > maxAbs {
			maxAbs = w
		}
	}
	if maxAbs == 0 {
		return 1
	}

	return maxAbs
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, keeping restart streams
// decorrelated while remaining fully deterministic.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
