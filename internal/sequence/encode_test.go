package sequence

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func zeros(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "00"
	}
	return out
}

func TestEncode_ReferenceLayout(t *testing.T) {
	seqs := []*Sequence{NewStructured("01", []string{"AA", "BB", "CC", "DD"})}
	bufs := Encode(seqs, DefaultLayout)

	if len(bufs.Staging1) != 252 {
		t.Fatalf("Expected staging1 length 252, got %d", len(bufs.Staging1))
	}
	if len(bufs.Staging2) != 168 {
		t.Fatalf("Expected staging2 length 168, got %d", len(bufs.Staging2))
	}

	want := []string{"01", "00", "02", "AA", "BB", "CC", "DD"}
	if diff := cmp.Diff(want, bufs.Staging1[:7]); diff != "" {
		t.Errorf("Header/data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(zeros(245), bufs.Staging1[7:]); diff != "" {
		t.Errorf("Expected staging1 zero padding (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(zeros(168), bufs.Staging2); diff != "" {
		t.Errorf("Expected staging2 all zero (-want +got):\n%s", diff)
	}
}

func TestEncode_PaddingInvariant(t *testing.T) {
	layout := Layout{Staging1: 6, Staging2: 4}

	tests := []struct {
		name string
		seqs []*Sequence
	}{
		{name: "empty", seqs: nil},
		{name: "nil slot", seqs: []*Sequence{nil}},
		{name: "exact fit", seqs: []*Sequence{NewRaw([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "A"})}},
		{name: "overflow", seqs: []*Sequence{
			NewStructured("01", []string{"0A", "64", "0A", "64"}),
			NewStructured("02", []string{"0A", "64", "0A", "64"}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bufs := Encode(tt.seqs, layout)
			if len(bufs.Staging1) != 6 {
				t.Errorf("Expected staging1 length 6, got %d", len(bufs.Staging1))
			}
			if len(bufs.Staging2) != 4 {
				t.Errorf("Expected staging2 length 4, got %d", len(bufs.Staging2))
			}
		})
	}
}

func TestEncode_OverflowSplitsAndDrops(t *testing.T) {
	layout := Layout{Staging1: 4, Staging2: 3}
	seqs := []*Sequence{NewStructured("01", []string{"A1", "A2", "A3", "A4", "A5", "A6"})}

	bufs := Encode(seqs, layout)

	if diff := cmp.Diff([]string{"01", "00", "03", "A1"}, bufs.Staging1); diff != "" {
		t.Errorf("Staging1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A2", "A3", "A4"}, bufs.Staging2); diff != "" {
		t.Errorf("Staging2 mismatch (-want +got):\n%s", diff)
	}
}

func TestCombine_RederivesLength(t *testing.T) {
	// A stale Length is ignored; the header follows the data.
	seq := &Sequence{Kind: Structured, Identifier: "0c", Length: 9, Data: []string{"0A", "64", "14", "00", "1E", "32"}}
	raw := NewRaw([]string{"de", "AD"})

	got := Combine([]*Sequence{seq, nil, raw})
	want := []string{"0c", "00", "03", "0A", "64", "14", "00", "1E", "32", "de", "AD"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Combine mismatch (-want +got):\n%s", diff)
	}
}

func TestCombine_LargeLengthIsUppercase(t *testing.T) {
	data := make([]string, 2*0x1AB)
	for i := range data {
		data[i] = "01"
	}
	got := Combine([]*Sequence{NewStructured("07", data)})

	if got[1] != "01" || got[2] != "AB" {
		t.Errorf("Expected length tokens 01 AB, got %s %s", got[1], got[2])
	}
}

func TestRoundTrip(t *testing.T) {
	seqs := []*Sequence{
		NewStructured("01", []string{"0A", "64", "14", "00"}),
		NewStructured("0b", []string{"05", "32"}),
		NewStructured("02", []string{}),
		NewStructured("03", []string{"ff", "10", "01", "02", "03", "04"}),
	}

	bufs := Encode(seqs, DefaultLayout)
	got := Decode(bufs.Staging1, bufs.Staging2)

	if len(got) != len(seqs) {
		t.Fatalf("Expected %d sequences, got %d", len(seqs), len(got))
	}
	for i := range seqs {
		if !strings.EqualFold(got[i].Identifier, seqs[i].Identifier) {
			t.Errorf("Sequence %d: expected identifier %s, got %s", i, seqs[i].Identifier, got[i].Identifier)
		}
		if got[i].Length != seqs[i].Length {
			t.Errorf("Sequence %d: expected length %d, got %d", i, seqs[i].Length, got[i].Length)
		}
		if diff := cmp.Diff(seqs[i].Data, got[i].Data, cmp.Comparer(strings.EqualFold)); diff != "" {
			t.Errorf("Sequence %d data mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRoundTrip_WithTrailingRaw(t *testing.T) {
	seqs := []*Sequence{
		NewStructured("01", []string{"0A", "64"}),
		NewRaw([]string{"00", "00", "00", "7F", "01"}),
	}

	bufs := Encode(seqs, DefaultLayout)
	got := Decode(bufs.Staging1, bufs.Staging2)

	if len(got) != 2 {
		t.Fatalf("Expected 2 sequences, got %d", len(got))
	}
	if !got[1].IsRaw() {
		t.Fatal("Expected trailing RAW record")
	}
	// The RAW leftover runs to the end of the padded buffers.
	if diff := cmp.Diff([]string{"7F", "01"}, got[1].Data[:2]); diff != "" {
		t.Errorf("RAW data mismatch (-want +got):\n%s", diff)
	}
	if got[1].Length != 420-5-3 {
		t.Errorf("Expected RAW length %d, got %d", 420-5-3, got[1].Length)
	}
}

func TestSize(t *testing.T) {
	seqs := []*Sequence{
		NewStructured("01", []string{"0A", "64", "14", "00"}),
		nil,
		NewRaw([]string{"01", "02", "03"}),
	}
	if got := Size(seqs); got != 10 {
		t.Errorf("Expected size 10, got %d", got)
	}
	if got := Size(seqs); got != len(Combine(seqs)) {
		t.Errorf("Expected size to match combined length %d, got %d", len(Combine(seqs)), got)
	}
}
