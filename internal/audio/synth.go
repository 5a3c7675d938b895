package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SynthPrefix marks a sound source rendered by the built-in synthesizer.
const SynthPrefix = "synth:"

type wave int

const (
	waveSquare wave = iota
	waveSaw
	waveNoise
)

// tone is a single oscillator sweeping linearly from one frequency to another
// with a linear fade out.
type tone struct {
	wave     wave
	from, to float64 // Hz
	gain     float64
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newTone(w wave, from, to float64, d time.Duration, gain float64, rate beep.SampleRate) *tone {
	return &tone{
		wave:  w,
		from:  from,
		to:    to,
		gain:  gain,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)

		var val float64
		switch t.wave {
		case waveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (t.phase - 0.5)
		case waveNoise:
			val = t.rng.Float64()*2 - 1
		}
		val *= t.gain * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// synthesize renders a named built-in effect into a buffer.
func synthesize(name string, rate beep.SampleRate) (*beep.Buffer, error) {
	var s beep.Streamer
	switch name {
	case "shoot":
		s = newTone(waveSquare, 880, 440, 120*time.Millisecond, 0.3, rate)
	case "bang":
		s = newTone(waveNoise, 0, 0, 180*time.Millisecond, 0.5, rate)
	case "explosion":
		d := 450 * time.Millisecond
		s = beep.Take(rate.N(d), beep.Mix(
			newTone(waveNoise, 0, 0, d, 0.5, rate),
			newTone(waveSaw, 90, 40, d, 0.4, rate),
		))
	default:
		return nil, fmt.Errorf("%w: %s%s", ErrUnknownSound, SynthPrefix, name)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
