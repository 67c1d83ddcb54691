package padictree

import (
	"fmt"
	"math/big"
)

// Config controls one exploration of the tree.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// P is the prime defining the tree. Must be prime. Default: 2.
	P int

	// BaseK and BaseQ describe the base vertex [BaseQ]_BaseK the words act
	// on. BaseQ is canonicalized at level BaseK. Defaults: 0 and 0 (the
	// distinguished vertex [0]_0).
	BaseK int
	BaseQ *big.Rat

	// Generators are the group generators acting on the tree. Each must be
	// invertible (nonzero determinant). An empty list explores only the
	// base vertex.
	Generators []Mat2

	// MaxWordLength bounds reduced-word enumeration. Word count grows
	// geometrically with this bound, so keep it small. Set to 0 to use the
	// default. Must be >= 0. Default: 3.
	MaxWordLength int

	// WindowDepth is how many levels below the base vertex the display
	// window is expanded after the orbit structures are computed. Set to 0
	// to use the default. Must be >= 0. Default: 3.
	WindowDepth int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		P:             2,
		MaxWordLength: 3,
		WindowDepth:   3,
	}
}

// Result contains the output of one exploration.
type Result struct {
	// Tree is the per-prime context the computation ran in.
	Tree *Tree

	// Base is the canonicalized base vertex.
	Base Vertex

	// Words lists every freely-reduced word up to the bound, identity first.
	Words []Word

	// Orbit maps each reached vertex to the words reaching it.
	Orbit Orbit

	// Stabilizer lists the words mapping the base vertex to itself.
	Stabilizer []string

	// Hull is the minimal connected subtree spanning the orbit.
	Hull *ConvexHull

	// Cell is the Voronoi cell of [0]_0 against the other orbit vertices.
	Cell *VoronoiCell

	// Window is the materialized subtree containing the orbit, hull and
	// cell, expanded WindowDepth levels below the base for display.
	Window *Subtree
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.P < 2 || !isPrime(cfg.P) {
		return fmt.Errorf("padictree: P must be prime, got %d", cfg.P)
	}
	if cfg.MaxWordLength < 0 {
		return fmt.Errorf("padictree: MaxWordLength must be >= 0, got %d", cfg.MaxWordLength)
	}
	if cfg.WindowDepth < 0 {
		return fmt.Errorf("padictree: WindowDepth must be >= 0, got %d", cfg.WindowDepth)
	}
	for i, g := range cfg.Generators {
		if g.A == nil || g.B == nil || g.C == nil || g.D == nil {
			return fmt.Errorf("padictree: generator %d has nil entries", i+1)
		}
		if g.Det().Sign() == 0 {
			return fmt.Errorf("padictree: generator %d is singular: %s", i+1, g)
		}
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.P == 0 {
		cfg.P = 2
	}
	if cfg.BaseQ == nil {
		cfg.BaseQ = new(big.Rat)
	}
	if cfg.MaxWordLength == 0 {
		cfg.MaxWordLength = 3
	}
	if cfg.WindowDepth == 0 {
		cfg.WindowDepth = 3
	}
}

// Explore performs one full recomputation, the way the interactive explorer
// reruns on every parameter change: word enumeration, orbit and stabilizer,
// convex hull, window expansion, then the Voronoi cell over the expanded
// window. All stages are synchronous and side-effect-free apart from the
// Tree's memo cache.
func Explore(cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	t, err := NewTree(cfg.P)
	if err != nil {
		return nil, err
	}
	base := t.Vertex(cfg.BaseK, cfg.BaseQ)

	words, err := GenerateGroupWords(cfg.Generators, cfg.MaxWordLength)
	if err != nil {
		return nil, err
	}
	orbit, err := orbitFromWords(t, base, words)
	if err != nil {
		return nil, err
	}

	// Expand before classifying: the cell covers every vertex of the
	// returned window, not just the orbit chains. Hull is insensitive to
	// the expansion order.
	window := NewSubtree(t, base)
	hull := window.ConvexHull(orbit)
	window.ExpandToLevel(base.K + cfg.WindowDepth)
	cell := window.VoronoiCell(orbit)

	return &Result{
		Tree:       t,
		Base:       base,
		Words:      words,
		Orbit:      orbit,
		Stabilizer: ComputeStabilizer(base, orbit),
		Hull:       hull,
		Cell:       cell,
		Window:     window,
	}, nil
}
