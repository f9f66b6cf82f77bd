package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Match is one ranked slide title.
type Match struct {
	Index int
	Title string
	// Distance is -1 for substring hits, otherwise the edit distance to the
	// closest word of the title.
	Distance int
}

// Finder ranks slide titles against a typed query.
type Finder struct {
	titles []string
	lower  []string
}

func NewFinder(titles []string) *Finder {
	f := &Finder{titles: titles, lower: make([]string, len(titles))}
	for i, t := range titles {
		f.lower[i] = strings.ToLower(t)
	}
	return f
}

// Rank returns matching titles, best first. An empty query matches
// everything in deck order.
func (f *Finder) Rank(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Match, 0, len(f.titles))
	if q == "" {
		for i, t := range f.titles {
			out = append(out, Match{Index: i, Title: t})
		}
		return out
	}
	limit := max(1, utf8.RuneCountInString(q)*2/5)
	for i, t := range f.lower {
		if strings.Contains(t, q) {
			out = append(out, Match{Index: i, Title: f.titles[i], Distance: -1})
			continue
		}
		best := levenshtein.ComputeDistance(q, t)
		for _, w := range strings.Fields(t) {
			if d := levenshtein.ComputeDistance(q, w); d < best {
				best = d
			}
		}
		if best <= limit {
			out = append(out, Match{Index: i, Title: f.titles[i], Distance: best})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Index < out[j].Index
	})
	return out
}
