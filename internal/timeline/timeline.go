// Package timeline turns sequences into brightness-over-time curves.
package timeline

import (
	"github.com/agleyzer/lightseq/internal/bytebuf"
	"github.com/agleyzer/lightseq/internal/sequence"
)

// DefaultTimeScale is the number of milliseconds per duration unit.
const DefaultTimeScale = 20

// Point is one knot of a piecewise-linear brightness curve.
type Point struct {
	// T is the time in milliseconds
	T float64

	// B is the brightness in percent (0-100)
	B float64
}

// Chart is the curve of one sequence.
type Chart struct {
	// MaxT is the time of the last knot
	MaxT float64

	// Points starts at (0,0) and has one knot per step
	Points []Point
}

// Engine evaluates sequences with a fixed time scale.
type Engine struct {
	scale float64
}

// New returns an engine using scale ms per duration unit.
// A non-positive scale falls back to DefaultTimeScale.
func New(scale int) Engine {
	if scale <= 0 {
		scale = DefaultTimeScale
	}
	return Engine{scale: float64(scale)}
}

// Scale returns the ms per duration unit.
func (e Engine) Scale() float64 {
	return e.scale
}

// Duration returns the total time of seq in ms. Nil and RAW sequences last 0.
func (e Engine) Duration(seq *sequence.Sequence) float64 {
	if !animated(seq) {
		return 0
	}
	var t float64
	for i := 0; i < len(seq.Data); i += 2 {
		t += float64(bytebuf.ParseHexByteOrZero(seq.Data[i])) * e.scale
	}
	return t
}

// Chart builds the knots of seq's curve.
func (e Engine) Chart(seq *sequence.Sequence) Chart {
	if !animated(seq) {
		return Chart{Points: []Point{}}
	}

	points := make([]Point, 0, len(seq.Data)/2+1)
	points = append(points, Point{T: 0, B: 0})

	var t float64
	for i := 0; i < len(seq.Data); i += 2 {
		dur, bri := stepAt(seq.Data, i)
		t += float64(dur) * e.scale
		points = append(points, Point{T: t, B: float64(bri)})
	}

	return Chart{MaxT: t, Points: points}
}

// BrightnessAt interpolates seq's brightness at time t (ms).
// Times past the end hold the last brightness. Calls may come in any order.
func (e Engine) BrightnessAt(seq *sequence.Sequence, t float64) float64 {
	if !animated(seq) {
		return 0
	}

	var tStart, bStart float64
	for i := 0; i < len(seq.Data); i += 2 {
		dur, bri := stepAt(seq.Data, i)
		stepDur := float64(dur) * e.scale
		bEnd := float64(bri)
		tEnd := tStart + stepDur

		if t >= tStart && t <= tEnd {
			if stepDur == 0 {
				return bEnd
			}
			progress := (t - tStart) / stepDur
			return bStart + (bEnd-bStart)*progress
		}

		tStart = tEnd
		bStart = bEnd
	}

	return bStart
}

// TotalDuration is the longest Duration across seqs.
func (e Engine) TotalDuration(seqs ...*sequence.Sequence) float64 {
	var total float64
	for _, s := range seqs {
		if d := e.Duration(s); d > total {
			total = d
		}
	}
	return total
}

func animated(seq *sequence.Sequence) bool {
	return seq != nil && !seq.IsRaw()
}

// stepAt reads the pair at data[i]; a missing brightness byte reads as 0.
func stepAt(data []string, i int) (int, int) {
	dur := bytebuf.ParseHexByteOrZero(data[i])
	bri := 0
	if i+1 < len(data) {
		bri = bytebuf.ParseHexByteOrZero(data[i+1])
	}
	return dur, min(bri, sequence.MaxBrightness)
}
