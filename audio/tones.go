package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator shape
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// tone is a finite streamer that glides from startFreq to endFreq over
// its duration. Equal start and end gives a plain steady note.
type tone struct {
	startFreq float64
	endFreq   float64
	phase     float64
	position  int
	total     int
	wave      waveType
	rate      beep.SampleRate
}

// newTone creates a gliding oscillator streamer
func newTone(startFreq, endFreq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps so
// blips do not click
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope wraps s in an attack/release envelope sized to duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if remaining := e.total - e.position; remaining < e.release {
			vol = float64(remaining) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
