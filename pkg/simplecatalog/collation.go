package simplecatalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByTitle sorts feed items by title ascending using English-locale
// collation rather than byte order, so "apple" sorts before "Banana". The
// sort is stable: items with equal titles keep the repository's storage
// order. A collator is allocated per call because collate.Collator is not
// safe for concurrent use.
func sortByTitle(items []*ContentItem) {
	c := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Title, items[j].Title) < 0
	})
}
