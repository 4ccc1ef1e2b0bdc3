// Package tokens holds the command and setting vocabulary of the spider
// shell lexer and renders it as sorted, quoted literal lists.
//
// The printed lists are pasted into the lexer's token table, where a
// word's position in the sorted list is its token kind. Keeping the
// literals here and sorting at print time means the table never has to
// be ordered by hand.
package tokens

import (
	"sort"

	"github.com/teranos/gentokens/logger"
)

// Labels printed before each list.
const (
	LabelTokens   = "validTokens"
	LabelSettings = "validSettings"
)

// List is an ordered sequence of identifier strings.
// Duplicates are allowed and kept.
type List []string

// Sort orders the list in place, ascending by byte value.
func (l List) Sort() {
	sort.Strings(l)
}

// IsSorted reports whether the list is in non-decreasing order.
func (l List) IsSorted() bool {
	return sort.StringsAreSorted(l)
}

// Vocabulary is the pair of lists the lexer recognizes.
type Vocabulary struct {
	Tokens   List // command names
	Settings List // configuration option names
}

// ValidTokens returns a fresh, unsorted copy of the built-in command names.
func ValidTokens() List {
	return List{"set", "bind", "exec"}
}

// ValidSettings returns a fresh, unsorted copy of the built-in setting names.
func ValidSettings() List {
	return List{"visual", "terminal"}
}

// Default returns the built-in vocabulary. Each call allocates new
// slices, so sorting one result never affects another.
func Default() *Vocabulary {
	return &Vocabulary{
		Tokens:   ValidTokens(),
		Settings: ValidSettings(),
	}
}

// Sort orders both lists in place.
func (v *Vocabulary) Sort() {
	log := logger.ComponentLogger("tokens")

	v.Tokens.Sort()
	log.Debugw("sorted list", logger.FieldList, LabelTokens, logger.FieldCount, len(v.Tokens))

	v.Settings.Sort()
	log.Debugw("sorted list", logger.FieldList, LabelSettings, logger.FieldCount, len(v.Settings))
}
