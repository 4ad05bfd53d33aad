package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Destinations is the ordered carousel list.
type Destinations []Destination

// String implements fuzzy.Source.
func (d Destinations) String(i int) string { return d[i].Name }

// Len implements fuzzy.Source.
func (d Destinations) Len() int { return len(d) }

// Names returns the destination names in order.
func (d Destinations) Names() []string {
	out := make([]string, len(d))
	for i := range d {
		out[i] = d[i].Name
	}
	return out
}

// Match is a destination hit for a search query.
type Match struct {
	Index   int
	Name    string
	Matched []int
}

// Search fuzzy-matches query against destination names, best match first.
// An empty query matches nothing.
func (d Destinations) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	hits := fuzzy.FindFrom(query, d)
	out := make([]Match, 0, len(hits))
	for _, h := range hits {
		out = append(out, Match{Index: h.Index, Name: h.Str, Matched: h.MatchedIndexes})
	}
	return out
}

// Best returns the index of the best match for query.
func (d Destinations) Best(query string) (int, bool) {
	hits := d.Search(query)
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0].Index, true
}
