package side

import (
	"github.com/agleyzer/lightseq/internal/bytebuf"
	"github.com/agleyzer/lightseq/internal/sequence"
)

// Field selects the byte of a step to update.
type Field int

const (
	FieldDuration Field = iota
	FieldBrightness
)

func (f Field) String() string {
	if f == FieldBrightness {
		return "brightness"
	}
	return "duration"
}

// maxDurationUnits is the largest duration a single step byte can hold.
const maxDurationUnits = 0xFF

// Default step appended by AddStep: 10 units at 0%.
var defaultStep = [2]string{"0A", "00"}

// Every mutation below re-encodes the side's buffers before returning and
// reports whether anything changed. Targets that do not exist, RAW records
// and empty slots are left alone.

// SetSequenceFromText replaces slot i with the sequence read from text.
// Empty text clears the slot. i may equal the slot count to append.
func (w *Workspace) SetSequenceFromText(n Name, i int, text string) bool {
	st, ok := w.sides[n]
	if !ok || i < 0 || i > len(st.Sequences) {
		w.ignored("set sequence", n, i)
		return false
	}

	seq := sequence.ParseText(text)
	if seq != nil {
		// The typed length is advisory; the buffers always carry the data's.
		seq.SyncLength()
	}
	if i == len(st.Sequences) {
		st.Sequences = append(st.Sequences, seq)
	} else {
		st.Sequences[i] = seq
	}

	w.Reencode(n)
	return true
}

// AddStep appends a default step to a structured sequence.
func (w *Workspace) AddStep(n Name, i int) bool {
	seq := w.editable(n, i)
	if seq == nil {
		w.ignored("add step", n, i)
		return false
	}

	seq.Data = append(seq.Data, defaultStep[0], defaultStep[1])
	seq.SyncLength()

	w.Reencode(n)
	return true
}

// RemoveStep deletes step stepIndex from a structured sequence.
func (w *Workspace) RemoveStep(n Name, i, stepIndex int) bool {
	seq := w.editable(n, i)
	if seq == nil || stepIndex < 0 || stepIndex*2 >= len(seq.Data) {
		w.ignored("remove step", n, i)
		return false
	}

	start := stepIndex * 2
	end := min(start+2, len(seq.Data))
	seq.Data = append(seq.Data[:start], seq.Data[end:]...)
	seq.SyncLength()

	w.Reencode(n)
	return true
}

// UpdateStep sets the duration (0-255 units) or brightness (0-100 %) of one step.
// Values are clamped to their range and stored as uppercase hex.
func (w *Workspace) UpdateStep(n Name, i, stepIndex int, field Field, value int) bool {
	seq := w.editable(n, i)
	if seq == nil || stepIndex < 0 {
		w.ignored("update step", n, i)
		return false
	}

	idx := stepIndex * 2
	limit := maxDurationUnits
	if field == FieldBrightness {
		idx++
		limit = sequence.MaxBrightness
	}
	if idx >= len(seq.Data) {
		w.ignored("update step", n, i)
		return false
	}

	seq.Data[idx] = bytebuf.FormatByte(max(0, min(value, limit)))
	seq.SyncLength()

	w.Reencode(n)
	return true
}

// CopySequence deep-copies slot i of one side into the same slot of the
// other side, growing the other side with empty slots when it is shorter.
func (w *Workspace) CopySequence(from Name, i int) bool {
	src := w.Sequence(from, i)
	if src == nil {
		w.ignored("copy sequence", from, i)
		return false
	}

	to := Other(from)
	st := w.sides[to]
	for len(st.Sequences) <= i {
		st.Sequences = append(st.Sequences, nil)
	}
	st.Sequences[i] = src.Clone()

	w.Reencode(to)
	return true
}

// editable returns the structured sequence in slot i, or nil.
func (w *Workspace) editable(n Name, i int) *sequence.Sequence {
	if _, ok := w.sides[n]; !ok {
		return nil
	}
	seq := w.Sequence(n, i)
	if seq == nil || seq.IsRaw() {
		return nil
	}
	return seq
}

func (w *Workspace) ignored(op string, n Name, i int) {
	w.logger.Debug("edit ignored", "op", op, "side", string(n), "index", i)
}
