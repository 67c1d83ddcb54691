// Command padictree explores orbits of finitely generated matrix groups on
// the Bruhat–Tits tree for PGL(2, Q_p): it enumerates reduced generator
// words, computes the orbit and stabilizer of a base vertex, derives the
// orbit's convex hull and the Voronoi cell of [0]_0, and presents the
// results as text, Graphviz DOT, or an interactive chart served over HTTP.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nbrody/padictree"
)

var logger zerolog.Logger

var (
	flagP       int
	flagBaseK   int
	flagBaseQ   string
	flagGens    []string
	flagMaxLen  int
	flagDepth   int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "padictree",
	Short: "Bruhat–Tits tree orbit explorer for PGL(2, Q_p)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagP, "p", 2, "prime defining the tree")
	pf.IntVar(&flagBaseK, "base-k", 0, "level of the base vertex")
	pf.StringVar(&flagBaseQ, "base-q", "0", "representative of the base vertex (\"n\" or \"n/d\")")
	pf.StringArrayVar(&flagGens, "gen", []string{"3,0;0,1", "5,-4;2,-1"},
		"generator matrix \"a,b;c,d\" with rational entries (repeatable)")
	pf.IntVar(&flagMaxLen, "max-length", 3, "maximum reduced word length")
	pf.IntVar(&flagDepth, "depth", 3, "window depth below the base vertex")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(wordsCmd, orbitCmd, hullCmd, voronoiCmd, dotCmd, serveCmd)
}

// buildConfig assembles an exploration config from the persistent flags.
func buildConfig() (padictree.Config, error) {
	cfg := padictree.DefaultConfig()
	cfg.P = flagP
	cfg.BaseK = flagBaseK
	cfg.MaxWordLength = flagMaxLen
	cfg.WindowDepth = flagDepth

	q, err := padictree.ParseRational(flagBaseQ)
	if err != nil {
		return cfg, err
	}
	cfg.BaseQ = q

	for _, s := range flagGens {
		m, err := padictree.ParseMat2(s)
		if err != nil {
			return cfg, fmt.Errorf("--gen %q: %w", s, err)
		}
		cfg.Generators = append(cfg.Generators, m)
	}
	return cfg, nil
}

// explore runs one full recomputation from the current flags.
func explore() (*padictree.Result, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	result, err := padictree.Explore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("p", cfg.P).
		Int("maxLength", cfg.MaxWordLength).
		Int("words", len(result.Words)).
		Int("orbit", len(result.Orbit)).
		Dur("elapsed", time.Since(start)).
		Msg("exploration complete")
	return result, nil
}

// sortedOrbit returns orbit entries ordered by shortest word, then level,
// then representative, so output is stable across runs.
func sortedOrbit(orbit padictree.Orbit) []*padictree.OrbitEntry {
	entries := make([]*padictree.OrbitEntry, 0, len(orbit))
	for _, e := range orbit {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.MinLength != b.MinLength {
			return a.MinLength < b.MinLength
		}
		if a.Vertex.K != b.Vertex.K {
			return a.Vertex.K < b.Vertex.K
		}
		return a.Vertex.ID().Q < b.Vertex.ID().Q
	})
	return entries
}

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List freely-reduced generator words up to the bound",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := explore()
		if err != nil {
			return err
		}
		for _, w := range result.Words {
			fmt.Printf("%2d  %-24s %s\n", w.Length, w.Text, w.Matrix)
		}
		logger.Info().Int("count", len(result.Words)).Msg("words enumerated")
		return nil
	},
}

var orbitCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Compute the orbit and stabilizer of the base vertex",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := explore()
		if err != nil {
			return err
		}
		fmt.Printf("orbit of %s under %d generator(s), words up to length %d:\n\n",
			result.Base, len(flagGens), flagMaxLen)
		for _, e := range sortedOrbit(result.Orbit) {
			fmt.Printf("  %-14s minLength=%d  words=%d  first=%s\n",
				e.Vertex, e.MinLength, len(e.Words), e.Words[0])
		}
		fmt.Printf("\nstabilizer: %d word(s)\n", len(result.Stabilizer))
		for _, w := range result.Stabilizer {
			fmt.Printf("  %s\n", w)
		}
		return nil
	},
}

var hullCmd = &cobra.Command{
	Use:   "hull",
	Short: "Compute the convex hull (Steiner tree) of the orbit",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := explore()
		if err != nil {
			return err
		}
		fmt.Printf("convex hull: %d vertices, %d undirected edges\n\n",
			len(result.Hull.Vertices), len(result.Hull.Edges)/2)
		fmt.Print(result.Window.Render(result.Orbit, result.Hull, nil))
		return nil
	},
}

var voronoiCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "Compute the Voronoi cell of [0]_0 against the orbit",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := explore()
		if err != nil {
			return err
		}
		fmt.Printf("voronoi cell of [0]_0: %d vertices, %d full edges, %d half edges\n\n",
			len(result.Cell.Vertices), len(result.Cell.FullEdges), len(result.Cell.HalfEdges))
		fmt.Print(result.Window.Render(result.Orbit, nil, result.Cell))
		return nil
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Emit the window with annotations as Graphviz DOT",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := explore()
		if err != nil {
			return err
		}
		out, err := result.Window.MarshalDOT(result.Orbit, result.Hull, result.Cell)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
