// internal/audio/generators.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
)

// oscillator is a finite beep.Streamer producing a single tone whose
// frequency sweeps linearly from startFreq to endFreq over its duration.
// Equal start and end gives a flat tone.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int // total samples
	position  int
	wave      waveType
	rate      beep.SampleRate
}

func newTone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, freq, d, wave, rate)
}

func newSweep(startFreq, endFreq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(d),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase-math.Floor(o.phase) < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		// Short fade-out to avoid a click at the tail.
		if remain := o.duration - o.position; remain < 512 {
			val *= float64(remain) / 512
		}
		val *= 0.3

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}
