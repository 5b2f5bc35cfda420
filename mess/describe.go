// SPDX-License-Identifier: MIT

package mess

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lobjects/atom"
)

// Describe renders the list for a console post:
//
//	Stored list (list - 3 / 256) :  1 2 3
//
// Lead-tagged lists show "mess" as their type. Null and Empty lists show
// <NULL> and <empty>.
func (l *List) Describe(name string) string {
	sel := l.sel
	if l.offset == 1 {
		sel = atom.SymMess
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s - %d / %d) : ", name, sel, l.n, l.Cap())
	switch {
	case l.IsNull():
		sb.WriteString(" <NULL>")
	case l.n == 0:
		sb.WriteString(" <empty>")
	default:
		for i := 0; i < l.n; i++ {
			sb.WriteByte(' ')
			sb.WriteString(describeAtom(l.vals[i]))
		}
	}

	return sb.String()
}

func describeAtom(a atom.Atom) string {
	switch a.Kind() {
	case atom.KindInt:
		return fmt.Sprintf("%d", a.AsInt())
	case atom.KindFloat:
		return fmt.Sprintf("%f", a.AsFloat())
	default:
		return string(a.AsSymbol())
	}
}
