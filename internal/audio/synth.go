package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	chimeNote    = 70 * time.Millisecond
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 50 * time.Millisecond

	crashDuration = 400 * time.Millisecond
	crashAttack   = 2 * time.Millisecond
	crashRelease  = 350 * time.Millisecond

	fanfareNote    = 110 * time.Millisecond
	fanfareAttack  = 5 * time.Millisecond
	fanfareRelease = 60 * time.Millisecond

	dirgeNote    = 220 * time.Millisecond
	dirgeAttack  = 10 * time.Millisecond
	dirgeRelease = 150 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// starChime is a quick two-tone ping, fundamental plus octave.
func starChime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		beep.Mix(
			newVolume(note(1046.5, chimeNote, chimeAttack, chimeRelease, WaveSine, rate), 0.7),
			newVolume(note(2093.0, chimeNote, chimeAttack, chimeRelease, WaveSine, rate), 0.3),
		),
		note(1568.0, chimeNote, chimeAttack, chimeRelease, WaveSine, rate),
	)
}

// crashThud is a burst of noise over a low sawtooth rumble.
func crashThud(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(note(0, crashDuration, crashAttack, crashRelease, WaveNoise, rate), 0.5),
		newVolume(note(70, crashDuration, crashAttack, crashRelease, WaveSaw, rate), 0.5),
	)
}

// fanfare is a rising major arpeggio.
func fanfare(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5}
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, fanfareNote, fanfareAttack, fanfareRelease, WaveSquare, rate)
	}
	return newVolume(beep.Seq(notes...), 0.4)
}

// dirge is a falling minor line.
func dirge(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{392.0, 311.13, 261.63}
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, dirgeNote, dirgeAttack, dirgeRelease, WaveSaw, rate)
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// Cue returns a freshly synthesized streamer for a simulation event, or nil
// when the event has no sound.
func Cue(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventStarCollect:
		return starChime(rate)
	case core.EventCrash:
		return crashThud(rate)
	case core.EventLevelComplete:
		return fanfare(rate)
	case core.EventGameOver:
		return dirge(rate)
	default:
		return nil
	}
}
