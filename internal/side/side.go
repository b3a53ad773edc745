// Package side holds the per-side staging buffers and sequences and keeps
// them consistent while sequences are edited.
package side

import (
	"fmt"
	"log/slog"

	"github.com/agleyzer/lightseq/internal/bytebuf"
	"github.com/agleyzer/lightseq/internal/config"
	"github.com/agleyzer/lightseq/internal/sequence"
	"github.com/agleyzer/lightseq/internal/timeline"
)

// Name identifies a side.
type Name string

const (
	Left  Name = "left"
	Right Name = "right"
)

// Names lists both sides in display order.
var Names = []Name{Left, Right}

// ParseName validates a side name.
func ParseName(s string) (Name, error) {
	switch Name(s) {
	case Left, Right:
		return Name(s), nil
	}
	return "", fmt.Errorf("unknown side %q (want left or right)", s)
}

// Other returns the opposite side.
func Other(n Name) Name {
	if n == Left {
		return Right
	}
	return Left
}

// Title is the capitalized side name used in labels.
func (n Name) Title() string {
	if n == Left {
		return "Left"
	}
	return "Right"
}

// State is one side's buffer pair and sequence slots.
// A nil slot is an empty editor slot.
type State struct {
	Staging1  []string
	Staging2  []string
	Sequences []*sequence.Sequence
}

// Usage is the encoded size of a side against its buffer capacities.
type Usage struct {
	// Staging1Used is the number of content bytes in the first buffer
	Staging1Used int

	// Staging2Used is the number of content bytes in the second buffer
	Staging2Used int

	// Total is the un-padded encoded size of every sequence
	Total int

	// Overflow is set when Total exceeds both buffers together
	Overflow bool
}

// Workspace owns both sides and the constants used to encode and animate them.
// It is not safe for concurrent use.
type Workspace struct {
	cfg    *config.Config
	layout sequence.Layout
	engine timeline.Engine
	sides  map[Name]*State
	logger *slog.Logger
}

// New creates an empty workspace. A nil cfg uses the defaults.
func New(cfg *config.Config, logger *slog.Logger) *Workspace {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &Workspace{
		cfg:    cfg,
		layout: cfg.Layout(),
		engine: timeline.New(cfg.TimeScale),
		logger: logger,
	}
	w.Clear()
	return w
}

// Config returns the workspace configuration.
func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// Engine returns the timeline engine used for queries.
func (w *Workspace) Engine() timeline.Engine {
	return w.engine
}

// Clear resets both sides to empty, zero-padded buffers.
func (w *Workspace) Clear() {
	w.sides = make(map[Name]*State, len(Names))
	for _, n := range Names {
		st := &State{Sequences: []*sequence.Sequence{}}
		bufs := sequence.Encode(nil, w.layout)
		st.Staging1, st.Staging2 = bufs.Staging1, bufs.Staging2
		w.sides[n] = st
	}
}

// Load parses a side's two buffer texts and decodes its sequences.
// Buffers longer than their capacity are trimmed with a warning.
func (w *Workspace) Load(n Name, staging1Text, staging2Text string) {
	st := w.state(n)
	logger := w.logger.With("side", string(n))

	st.Staging1 = bytebuf.EnsureMaxSize(bytebuf.Parse(staging1Text), w.layout.Staging1, logger.With("buffer", "staging1"))
	st.Staging2 = bytebuf.EnsureMaxSize(bytebuf.Parse(staging2Text), w.layout.Staging2, logger.With("buffer", "staging2"))

	stream := make([]string, 0, len(st.Staging1)+len(st.Staging2))
	stream = append(stream, st.Staging1...)
	stream = append(stream, st.Staging2...)
	res := sequence.Scan(stream)
	st.Sequences = res.Sequences

	if res.Lost > 0 {
		logger.Warn("sequence data incomplete, header bytes dropped",
			"stop", res.Stop.String(),
			"position", res.Cursor-res.Lost,
			"lost", res.Lost,
		)
	}

	logger.Debug("decoded side",
		"sequences", len(st.Sequences),
		"stop", res.Stop.String(),
		"cursor", res.Cursor,
		"size", sequence.Size(st.Sequences),
	)
}

// StagingText returns the side's buffers as byte text.
func (w *Workspace) StagingText(n Name) (string, string) {
	st := w.state(n)
	return bytebuf.Build(st.Staging1), bytebuf.Build(st.Staging2)
}

// Buffers returns the side's buffer pair.
func (w *Workspace) Buffers(n Name) sequence.Buffers {
	st := w.state(n)
	return sequence.Buffers{Staging1: st.Staging1, Staging2: st.Staging2}
}

// Sequences returns the side's sequence slots.
func (w *Workspace) Sequences(n Name) []*sequence.Sequence {
	return w.state(n).Sequences
}

// Sequence returns slot i of a side, or nil when it is empty or out of range.
func (w *Workspace) Sequence(n Name, i int) *sequence.Sequence {
	seqs := w.state(n).Sequences
	if i < 0 || i >= len(seqs) {
		return nil
	}
	return seqs[i]
}

// Slots is the number of sequence rows shown for both sides.
func (w *Workspace) Slots() int {
	return max(len(w.state(Left).Sequences), len(w.state(Right).Sequences))
}

// ChartData returns the curve of slot i on a side.
func (w *Workspace) ChartData(n Name, i int) timeline.Chart {
	return w.engine.Chart(w.Sequence(n, i))
}

// BrightnessAt returns the brightness of slot i on a side at time t (ms).
func (w *Workspace) BrightnessAt(n Name, i int, t float64) float64 {
	return w.engine.BrightnessAt(w.Sequence(n, i), t)
}

// TotalDuration is the longest sequence duration across both sides.
func (w *Workspace) TotalDuration() float64 {
	var all []*sequence.Sequence
	for _, n := range Names {
		all = append(all, w.state(n).Sequences...)
	}
	return w.engine.TotalDuration(all...)
}

// Usage reports how much of the side's buffer space the sequences need.
func (w *Workspace) Usage(n Name) Usage {
	total := sequence.Size(w.state(n).Sequences)
	return Usage{
		Staging1Used: min(total, w.layout.Staging1),
		Staging2Used: max(0, min(total-w.layout.Staging1, w.layout.Staging2)),
		Total:        total,
		Overflow:     total > w.layout.Capacity(),
	}
}

// Reencode regenerates a side's buffers from its sequences, padding each
// buffer to its capacity.
// Content past the capacity is dropped silently; Usage reports it.
func (w *Workspace) Reencode(n Name) {
	st := w.state(n)
	bufs := sequence.Encode(st.Sequences, w.layout)
	st.Staging1, st.Staging2 = bufs.Staging1, bufs.Staging2
}

func (w *Workspace) state(n Name) *State {
	if st, ok := w.sides[n]; ok {
		return st
	}
	// Unknown names read as an empty side.
	return &State{}
}
