package padictree

// OrbitEntry records one vertex reached by word enumeration: the vertex
// itself, every enumerated word landing on it, and the shortest such
// word's length.
type OrbitEntry struct {
	Vertex    Vertex
	Words     []string
	MinLength int
}

// Orbit maps vertex identity to the words reaching that vertex. One entry
// per distinct vertex; built once per query and immutable afterwards.
type Orbit map[VertexID]*OrbitEntry

// ComputeOrbit applies every freely-reduced word up to maxLength to the
// base vertex and accumulates the results by vertex identity. Words that
// land on an already-seen vertex append to its entry and may lower
// MinLength. Returns an error for a singular generator.
func ComputeOrbit(t *Tree, base Vertex, gens []Mat2, maxLength int) (Orbit, error) {
	words, err := GenerateGroupWords(gens, maxLength)
	if err != nil {
		return nil, err
	}
	return orbitFromWords(t, base, words)
}

// orbitFromWords aggregates pre-enumerated words into an orbit map.
func orbitFromWords(t *Tree, base Vertex, words []Word) (Orbit, error) {
	orbit := make(Orbit)
	for _, w := range words {
		v, err := t.Action(w.Matrix, base)
		if err != nil {
			return nil, err
		}
		id := v.ID()
		entry := orbit[id]
		if entry == nil {
			entry = &OrbitEntry{Vertex: v, MinLength: w.Length}
			orbit[id] = entry
		}
		entry.Words = append(entry.Words, w.Text)
		if w.Length < entry.MinLength {
			entry.MinLength = w.Length
		}
	}
	return orbit, nil
}

// ComputeStabilizer returns the words that map the base vertex back to
// itself: the word list of the orbit entry keyed by the base's own
// identity. Nil if the base vertex was never re-visited.
func ComputeStabilizer(base Vertex, orbit Orbit) []string {
	entry := orbit[base.ID()]
	if entry == nil {
		return nil
	}
	return entry.Words
}
