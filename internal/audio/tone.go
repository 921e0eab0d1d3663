package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator is a finite square/sine tone.
type oscillator struct {
	freq     float64
	phase    float64
	square   bool
	duration int
	position int
	rate     beep.SampleRate
}

// Tone returns a short decaying tone. Used when a sound file is missing.
func Tone(rate beep.SampleRate, freq float64, duration time.Duration, square bool) beep.Streamer {
	osc := &oscillator{
		freq:     freq,
		square:   square,
		duration: rate.N(duration),
		rate:     rate,
	}
	return &effects.Volume{Streamer: &decay{s: osc, total: osc.duration}, Base: 2, Volume: -2}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		if o.square {
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence over total samples.
type decay struct {
	s        beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// FallbackTone returns the synthesized stand-in for a named sound.
func FallbackTone(name string) beep.Streamer {
	switch name {
	case "coin":
		// Two quick notes, B5 then E6
		return beep.Seq(
			Tone(SampleRate, 987.77, 60*time.Millisecond, true),
			Tone(SampleRate, 1318.51, 120*time.Millisecond, true),
		)
	case "powerup":
		return beep.Seq(
			Tone(SampleRate, 523.25, 70*time.Millisecond, false),
			Tone(SampleRate, 659.25, 70*time.Millisecond, false),
			Tone(SampleRate, 783.99, 120*time.Millisecond, false),
		)
	default:
		return Tone(SampleRate, 440, 100*time.Millisecond, false)
	}
}
