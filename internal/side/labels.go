package side

import (
	"fmt"
	"strings"
)

// SequenceLabel names slot i of a side for display.
func (w *Workspace) SequenceLabel(n Name, i int) string {
	seq := w.Sequence(n, i)
	switch {
	case seq == nil:
		return fmt.Sprintf("Ch %s #%d", n.Title(), i+1)
	case seq.IsRaw():
		return "RAW " + n.Title()
	}

	ch, _ := seq.Channel()
	if name, ok := w.cfg.ChannelLabel(ch); ok {
		return fmt.Sprintf("%s (%s, Ch %d)", name, n.Title(), ch)
	}
	return fmt.Sprintf("Ch %s %d (0x%s)", n.Title(), ch, strings.ToUpper(seq.Identifier))
}

// DiagramLabel names the shared diagram of slot i.
func (w *Workspace) DiagramLabel(i int) string {
	left := w.Sequence(Left, i)
	right := w.Sequence(Right, i)
	if left == nil || right == nil || left.IsRaw() || right.IsRaw() {
		return fmt.Sprintf("Diagram #%d", i+1)
	}

	lID := strings.ToUpper(left.Identifier)
	rID := strings.ToUpper(right.Identifier)
	lCh, _ := left.Channel()
	rCh, _ := right.Channel()

	if lID == rID {
		if name, ok := w.cfg.ChannelLabel(lCh); ok {
			return fmt.Sprintf("%s, Diagram (Ch %d)", name, lCh)
		}
		return fmt.Sprintf("Diagram Ch %d (0x%s)", lCh, lID)
	}

	lName, lOK := w.cfg.ChannelLabel(lCh)
	rName, rOK := w.cfg.ChannelLabel(rCh)
	if lOK && rOK {
		return fmt.Sprintf("%s / %s, Diagram", lName, rName)
	}
	return fmt.Sprintf("Diagram Ch %d (0x%s) / Ch %d (0x%s)", lCh, lID, rCh, rID)
}
