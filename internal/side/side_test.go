package side

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agleyzer/lightseq/internal/bytebuf"
	"github.com/agleyzer/lightseq/internal/config"
	"github.com/agleyzer/lightseq/internal/sequence"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}))
}

func createTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	cfg := config.Default()
	cfg.TimeScale = 10
	return New(cfg, createTestLogger())
}

func TestNew_PaddedEmptySides(t *testing.T) {
	w := New(nil, nil)

	for _, n := range Names {
		bufs := w.Buffers(n)
		if len(bufs.Staging1) != 252 || len(bufs.Staging2) != 168 {
			t.Errorf("%s: expected 252/168 tokens, got %d/%d", n, len(bufs.Staging1), len(bufs.Staging2))
		}
		if len(w.Sequences(n)) != 0 {
			t.Errorf("%s: expected no sequences, got %d", n, len(w.Sequences(n)))
		}
	}
	if w.Engine().Scale() != 20 {
		t.Errorf("Expected default time scale 20, got %v", w.Engine().Scale())
	}
}

func TestLoad(t *testing.T) {
	w := createTestWorkspace(t)
	w.Load(Left, "01, 00, 02, 0A, 64, 14, 00, 00, 00, 00", "")
	w.Load(Right, "02,00,01,05,32", "00, 00, 00, 7F")

	left := w.Sequences(Left)
	if len(left) != 1 {
		t.Fatalf("Expected 1 left sequence, got %d", len(left))
	}
	if left[0].Identifier != "01" || left[0].Length != 2 {
		t.Errorf("Expected identifier 01 length 2, got %s length %d", left[0].Identifier, left[0].Length)
	}

	right := w.Sequences(Right)
	if len(right) != 2 || !right[1].IsRaw() {
		t.Fatalf("Expected structured + RAW on the right, got %+v", right)
	}

	// Buffers keep the parsed (unpadded) input until the next edit.
	s1, s2 := w.StagingText(Right)
	if s1 != "02, 00, 01, 05, 32" || s2 != "00, 00, 00, 7F" {
		t.Errorf("Unexpected staging text %q / %q", s1, s2)
	}
}

func TestLoad_TrimsOversizedBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.Default()
	cfg.MaxStaging1 = 4
	cfg.MaxStaging2 = 2
	w := New(cfg, logger)

	w.Load(Left, "01, 00, 01, 0A, 64, 99", "AA, BB, CC")

	bufs := w.Buffers(Left)
	if len(bufs.Staging1) != 4 || len(bufs.Staging2) != 2 {
		t.Errorf("Expected 4/2 tokens, got %d/%d", len(bufs.Staging1), len(bufs.Staging2))
	}
	if strings.Count(buf.String(), "exceeded byte limit") != 2 {
		t.Errorf("Expected two trim warnings, got log:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "side=left") {
		t.Errorf("Expected side attribute in log, got:\n%s", buf.String())
	}
}

func TestLoad_WarnsOnLostHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w := New(nil, logger)

	w.Load(Left, "01, 00, 09, 0A, 64", "")

	if !strings.Contains(buf.String(), "header bytes dropped") {
		t.Errorf("Expected lost-header warning, got log:\n%s", buf.String())
	}
	if len(w.Sequences(Left)) != 1 || !w.Sequences(Left)[0].IsRaw() {
		t.Errorf("Expected only the trailing bytes as RAW, got %+v", w.Sequences(Left))
	}
}

func TestQueries(t *testing.T) {
	w := createTestWorkspace(t)
	w.Load(Left, "01, 00, 02, 0A, 64, 14, 00", "")
	w.Load(Right, "01, 00, 01, FF, 64", "")

	chart := w.ChartData(Left, 0)
	if chart.MaxT != 300 || len(chart.Points) != 3 {
		t.Errorf("Expected maxT 300 with 3 points, got %v with %d", chart.MaxT, len(chart.Points))
	}
	if got := w.BrightnessAt(Left, 0, 200); got != 50 {
		t.Errorf("Expected brightness 50, got %v", got)
	}
	if got := w.BrightnessAt(Left, 5, 200); got != 0 {
		t.Errorf("Expected 0 for missing slot, got %v", got)
	}
	if got := w.TotalDuration(); got != 2550 {
		t.Errorf("Expected total duration 2550, got %v", got)
	}
	if w.Slots() != 1 {
		t.Errorf("Expected 1 slot, got %d", w.Slots())
	}
}

func TestUsage(t *testing.T) {
	cfg := config.Default()
	cfg.MaxStaging1 = 5
	cfg.MaxStaging2 = 4
	w := New(cfg, createTestLogger())

	w.SetSequenceFromText(Left, 0, "01, 00, 02, 0A, 64, 14, 00")
	usage := w.Usage(Left)
	want := Usage{Staging1Used: 5, Staging2Used: 2, Total: 7, Overflow: false}
	if diff := cmp.Diff(want, usage); diff != "" {
		t.Errorf("Usage mismatch (-want +got):\n%s", diff)
	}

	w.AddStep(Left, 0)
	w.AddStep(Left, 0)
	usage = w.Usage(Left)
	if !usage.Overflow || usage.Total != 11 || usage.Staging2Used != 4 {
		t.Errorf("Expected overflow with total 11, got %+v", usage)
	}

	// Re-encoding still fills the buffers exactly.
	bufs := w.Buffers(Left)
	if len(bufs.Staging1) != 5 || len(bufs.Staging2) != 4 {
		t.Errorf("Expected 5/4 tokens, got %d/%d", len(bufs.Staging1), len(bufs.Staging2))
	}
}

func TestClear(t *testing.T) {
	w := createTestWorkspace(t)
	w.Load(Left, "01, 00, 01, 0A, 64", "")
	w.Clear()

	if len(w.Sequences(Left)) != 0 {
		t.Errorf("Expected no sequences after clear, got %d", len(w.Sequences(Left)))
	}
	s1, _ := w.StagingText(Left)
	if len(bytebuf.Parse(s1)) != 252 {
		t.Errorf("Expected padded staging1 after clear")
	}
}

func TestParseNameAndOther(t *testing.T) {
	if n, err := ParseName("left"); err != nil || n != Left {
		t.Errorf("Expected left, got %v (%v)", n, err)
	}
	if _, err := ParseName("middle"); err == nil {
		t.Error("Expected error for unknown side")
	}
	if Other(Left) != Right || Other(Right) != Left {
		t.Error("Expected Other to swap sides")
	}
}

func TestUnknownSideReadsEmpty(t *testing.T) {
	w := createTestWorkspace(t)
	if seqs := w.Sequences(Name("up")); len(seqs) != 0 {
		t.Errorf("Expected no sequences, got %d", len(seqs))
	}
	if w.AddStep(Name("up"), 0) {
		t.Error("Expected edit on unknown side to be ignored")
	}
	if w.Sequence(Name("up"), 0) != nil {
		t.Error("Expected nil sequence for unknown side")
	}
}

func TestSequencesAreNotSharedWithBuffers(t *testing.T) {
	w := createTestWorkspace(t)
	w.Load(Left, "01, 00, 01, 0A, 64", "")

	var seq *sequence.Sequence = w.Sequence(Left, 0)
	seq.Data[0] = "FF"
	if w.Buffers(Left).Staging1[3] != "0A" {
		t.Error("Expected buffers to be independent of decoded sequence data")
	}
}

func TestReencode(t *testing.T) {
	w := createTestWorkspace(t)
	w.Load(Left, "01, 00, 02, 0a, 64, 14, 00", "")
	w.Reencode(Left)

	bufs := w.Buffers(Left)
	if len(bufs.Staging1) != 252 || len(bufs.Staging2) != 168 {
		t.Fatalf("Expected padded 252/168 tokens, got %d/%d", len(bufs.Staging1), len(bufs.Staging2))
	}
	want := []string{"01", "00", "02", "0a", "64", "14", "00", "00"}
	if diff := cmp.Diff(want, bufs.Staging1[:len(want)]); diff != "" {
		t.Errorf("Staging1 prefix mismatch (-want +got):\n%s", diff)
	}
	if len(w.Sequences(Left)) != 1 {
		t.Errorf("Expected sequences to survive re-encoding, got %d", len(w.Sequences(Left)))
	}
}
