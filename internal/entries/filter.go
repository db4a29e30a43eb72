package entries

import (
	"github.com/sahilm/fuzzy"
)

// titles adapts a slice of entries to fuzzy.Source.
type titles []*MenuEntry

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Filter returns the indices of the entries whose title matches query, best match first.
// An empty query matches every entry in its original order.
func Filter(menu []*MenuEntry, query string) []int {
	if query == "" {
		all := make([]int, len(menu))
		for i := range menu {
			all[i] = i
		}
		return all
	}
	matches := fuzzy.FindFrom(query, titles(menu))
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

// Find returns the entry whose title equals query, or else the best fuzzy match.
// It returns nil when nothing matches.
func Find(menu []*MenuEntry, query string) *MenuEntry {
	for _, e := range menu {
		if e.Title == query {
			return e
		}
	}
	if query == "" {
		return nil
	}
	if idx := Filter(menu, query); len(idx) > 0 {
		return menu[idx[0]]
	}
	return nil
}
