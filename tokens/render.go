package tokens

import (
	"io"
	"strings"

	"github.com/teranos/gentokens/errors"
	"github.com/teranos/gentokens/logger"
)

const separator = ", "

// quote wraps s in double quotes. Identifiers never contain quotes, so
// no escaping is applied.
func quote(s string) string {
	return "\"" + s + "\""
}

// Render formats a list as quoted literals joined by ", ".
// An empty list renders as the empty string.
//
//	Render(List{"bind", "exec"}) == `"bind", "exec"`
func Render(l List) string {
	var sb strings.Builder
	for i, entry := range l {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(quote(entry))
	}
	return sb.String()
}

// Print sorts both lists and writes them to w, each preceded by its
// label line:
//
//	validTokens:
//	"bind", "exec", "set"
//	validSettings:
//	"terminal", "visual"
func (v *Vocabulary) Print(w io.Writer) error {
	v.Sort()

	if err := writeSection(w, LabelTokens, v.Tokens); err != nil {
		return err
	}
	if err := writeSection(w, LabelSettings, v.Settings); err != nil {
		return err
	}

	logger.ComponentLogger("tokens").Infow("printed vocabulary",
		logger.FieldOperation, "print",
		"tokens", len(v.Tokens),
		"settings", len(v.Settings))
	return nil
}

func writeSection(w io.Writer, label string, l List) error {
	if _, err := io.WriteString(w, label+":\n"+Render(l)+"\n"); err != nil {
		return errors.WrapWrite(err, "failed to write "+label)
	}
	return nil
}

// Run prints the built-in vocabulary to w.
func Run(w io.Writer) error {
	return Default().Print(w)
}
