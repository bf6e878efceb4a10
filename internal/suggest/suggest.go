// Package suggest finds the closest known name to a misspelled one.
package suggest

import (
	"strings"
	"unicode"
)

// MinScore is the similarity below which Closest reports no match.
const MinScore = 0.5

// Distance returns the edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	// two rows over the shorter string
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores a and b between 0 and 1 after folding case and dropping
// separators, so "type_name" and "TypeName" score 1.
func Similarity(a, b string) float64 {
	na, nb := normalize(a), normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Closest returns the candidate most similar to name, or false when none
// reaches MinScore. Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)
	for _, c := range candidates {
		if s := Similarity(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	if bestScore < MinScore {
		return "", false
	}

	return best, true
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
