package main

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/nbrody/padictree"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the explorer over HTTP (interactive chart + JSON API)",
	Long: `Serve recomputes the exploration on every request, so the CLI flags
act as defaults and can be overridden per request with query parameters:
p, base-k, base-q, gen (repeatable), max-length, depth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := chi.NewRouter()
		r.Use(requestLogger)
		r.Use(middleware.Recoverer)

		r.Get("/", handleChart)
		r.Route("/api", func(r chi.Router) {
			r.Get("/orbit", handleOrbit)
			r.Get("/hull", handleHull)
			r.Get("/voronoi", handleVoronoi)
		})

		logger.Info().Str("addr", flagAddr).Msg("explorer listening")
		return http.ListenAndServe(flagAddr, r)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":3030", "listen address")
}

// requestLogger logs one line per request with status and timing.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// configFromRequest builds an exploration config from the CLI defaults with
// per-request query overrides.
func configFromRequest(r *http.Request) (padictree.Config, error) {
	cfg, err := buildConfig()
	if err != nil {
		return cfg, err
	}
	q := r.URL.Query()
	if s := q.Get("p"); s != "" {
		if cfg.P, err = strconv.Atoi(s); err != nil {
			return cfg, err
		}
	}
	if s := q.Get("base-k"); s != "" {
		if cfg.BaseK, err = strconv.Atoi(s); err != nil {
			return cfg, err
		}
	}
	if s := q.Get("base-q"); s != "" {
		if cfg.BaseQ, err = padictree.ParseRational(s); err != nil {
			return cfg, err
		}
	}
	if s := q.Get("max-length"); s != "" {
		if cfg.MaxWordLength, err = strconv.Atoi(s); err != nil {
			return cfg, err
		}
	}
	if s := q.Get("depth"); s != "" {
		if cfg.WindowDepth, err = strconv.Atoi(s); err != nil {
			return cfg, err
		}
	}
	if gens := q["gen"]; len(gens) > 0 {
		cfg.Generators = nil
		for _, s := range gens {
			m, err := padictree.ParseMat2(s)
			if err != nil {
				return cfg, err
			}
			cfg.Generators = append(cfg.Generators, m)
		}
	}
	return cfg, nil
}

// exploreRequest runs one recomputation for an HTTP request. Each request
// is independent; nothing is shared between them except the per-Tree memo
// cache, which lives and dies with the request's Result.
func exploreRequest(w http.ResponseWriter, r *http.Request) *padictree.Result {
	cfg, err := configFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	result, err := padictree.Explore(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	return result
}

func handleChart(w http.ResponseWriter, r *http.Request) {
	result := exploreRequest(w, r)
	if result == nil {
		return
	}
	page := components.NewPage()
	page.AddCharts(padictree.BuildGraph(result.Window, result.Orbit, result.Hull, result.Cell))
	if err := page.Render(w); err != nil {
		logger.Error().Err(err).Msg("render chart page")
	}
}

type orbitEntryJSON struct {
	ID        string   `json:"id"`
	K         int      `json:"k"`
	Q         string   `json:"q"`
	MinLength int      `json:"minLength"`
	Words     []string `json:"words"`
}

type orbitJSON struct {
	Base       string           `json:"base"`
	Entries    []orbitEntryJSON `json:"entries"`
	Stabilizer []string         `json:"stabilizer"`
}

func handleOrbit(w http.ResponseWriter, r *http.Request) {
	result := exploreRequest(w, r)
	if result == nil {
		return
	}
	payload := orbitJSON{
		Base:       result.Base.ID().String(),
		Stabilizer: result.Stabilizer,
	}
	for _, e := range sortedOrbit(result.Orbit) {
		id := e.Vertex.ID()
		payload.Entries = append(payload.Entries, orbitEntryJSON{
			ID:        id.String(),
			K:         id.K,
			Q:         id.Q,
			MinLength: e.MinLength,
			Words:     e.Words,
		})
	}
	writeJSON(w, payload)
}

type hullJSON struct {
	Vertices []string `json:"vertices"`
	Edges    []string `json:"edges"`
}

func handleHull(w http.ResponseWriter, r *http.Request) {
	result := exploreRequest(w, r)
	if result == nil {
		return
	}
	writeJSON(w, hullJSON{
		Vertices: vertexIDs(result.Hull.Vertices),
		Edges:    edgeKeys(result.Hull.Edges),
	})
}

type voronoiJSON struct {
	Vertices  []string `json:"vertices"`
	HalfEdges []string `json:"halfEdges"`
	FullEdges []string `json:"fullEdges"`
}

func handleVoronoi(w http.ResponseWriter, r *http.Request) {
	result := exploreRequest(w, r)
	if result == nil {
		return
	}
	writeJSON(w, voronoiJSON{
		Vertices:  vertexIDs(result.Cell.Vertices),
		HalfEdges: edgeKeys(result.Cell.HalfEdges),
		FullEdges: edgeKeys(result.Cell.FullEdges),
	})
}

func vertexIDs(set map[padictree.VertexID]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id.String())
	}
	sort.Strings(out)
	return out
}

func edgeKeys(set map[padictree.EdgeKey]bool) []string {
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e.String())
	}
	sort.Strings(out)
	return out
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("encode response")
	}
}
