package tokens

import (
	"sort"

	"github.com/teranos/gentokens/logger"
)

// Kind is a word's ordinal in the lexer's token enumeration.
//
// Commands occupy 0..len(Tokens)-1 in sorted order. One reserved slot
// separates them from settings, which follow in sorted order. The slot
// after the last setting is the plain string kind:
//
//	bind=0 exec=1 set=2 (offset=3) terminal=4 visual=5 string=6
type Kind int

// Offset returns the reserved slot between commands and settings.
func (v *Vocabulary) Offset() Kind {
	return Kind(len(v.Tokens))
}

// StringKind returns the kind of a word that is neither a command nor a setting.
func (v *Vocabulary) StringKind() Kind {
	return v.Offset() + 1 + Kind(len(v.Settings))
}

// KindOf classifies word. Comparison is case-sensitive. Both lists are
// sorted first, since a kind is only meaningful against sorted positions.
func (v *Vocabulary) KindOf(word string) Kind {
	v.Sort()

	kind := v.StringKind()
	if i, ok := search(v.Tokens, word); ok {
		kind = Kind(i)
	} else if i, ok := search(v.Settings, word); ok {
		kind = v.Offset() + 1 + Kind(i)
	}

	logger.ComponentLogger("tokens").Debugw("classified word",
		logger.FieldWord, word,
		logger.FieldKind, v.Name(kind))
	return kind
}

// Name returns the word for a command or setting kind, "offset" for the
// reserved slot and "string" for everything else.
func (v *Vocabulary) Name(k Kind) string {
	switch {
	case k >= 0 && k < v.Offset():
		return v.Tokens[k]
	case k == v.Offset():
		return "offset"
	case k > v.Offset() && k < v.StringKind():
		return v.Settings[k-v.Offset()-1]
	default:
		return "string"
	}
}

func search(l List, word string) (int, bool) {
	i := sort.SearchStrings(l, word)
	return i, i < len(l) && l[i] == word
}
