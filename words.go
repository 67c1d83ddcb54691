package padictree

import (
	"fmt"
	"strconv"
)

// letter identifies one alphabet pick: a generator index plus an inverse flag.
type letter struct {
	index   int
	inverse bool
}

func (l letter) token() string {
	s := "g" + strconv.Itoa(l.index+1)
	if l.inverse {
		s += "⁻¹"
	}
	return s
}

// cancels reports whether appending m after l would cancel (g·g⁻¹ or g⁻¹·g).
func (l letter) cancels(m letter) bool {
	return l.index == m.index && l.inverse != m.inverse
}

// Word is a freely-reduced product of generators and inverses. Text is the
// token form ("e" for the identity, otherwise tokens like g1 and g2⁻¹
// joined by '*'), Matrix the accumulated product, Length the number of
// letters.
type Word struct {
	Text   string
	Matrix Mat2
	Length int

	last letter // meaningful only when Length > 0
}

// LastLetter returns the generator index and inverse flag of the word's
// final letter; ok is false for the identity word.
func (w Word) LastLetter() (index int, inverse bool, ok bool) {
	if w.Length == 0 {
		return 0, false, false
	}
	return w.last.index, w.last.inverse, true
}

// identityWord is the empty product.
func identityWord() Word {
	return Word{Text: "e", Matrix: Identity(), Length: 0}
}

// GenerateGroupWords enumerates every freely-reduced word over the alphabet
// {g_1, g_1⁻¹, ..., g_n, g_n⁻¹} of length at most maxLength, breadth-first
// by length. The identity word is always first. Each word carries its
// product matrix, accumulated with one multiplication per extension, and
// its last letter so extensions check reduction in O(1): a letter may not
// follow its own inverse. Words reaching the same group element are all
// kept — merging happens at the orbit stage, keyed by resulting vertex.
//
// Word count grows geometrically (branching factor 2n-1 after the first
// letter), which bounds practical maxLength; that is a caller-tuning
// concern, not an enforced limit.
//
// A generator with zero determinant is rejected before enumeration begins.
func GenerateGroupWords(gens []Mat2, maxLength int) ([]Word, error) {
	type pick struct {
		letter letter
		matrix Mat2
	}
	alphabet := make([]pick, 0, 2*len(gens))
	for i, g := range gens {
		inv, err := g.Inverse()
		if err != nil {
			return nil, fmt.Errorf("padictree: generator %d: %w", i+1, err)
		}
		alphabet = append(alphabet,
			pick{letter{index: i, inverse: false}, g},
			pick{letter{index: i, inverse: true}, inv},
		)
	}

	words := []Word{identityWord()}
	frontier := words
	for length := 1; length <= maxLength; length++ {
		next := make([]Word, 0, len(frontier)*len(alphabet))
		for _, w := range frontier {
			for _, a := range alphabet {
				if w.Length > 0 && w.last.cancels(a.letter) {
					continue
				}
				text := a.letter.token()
				if w.Length > 0 {
					text = w.Text + "*" + text
				}
				next = append(next, Word{
					Text:   text,
					Matrix: w.Matrix.Mul(a.matrix),
					Length: length,
					last:   a.letter,
				})
			}
		}
		words = append(words, next...)
		frontier = next
	}
	return words, nil
}
