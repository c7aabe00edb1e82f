package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain pulls a streamer to exhaustion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never finished")
	return nil
}

func TestToneFiniteLength(t *testing.T) {
	dur := 50 * time.Millisecond
	samples := drain(t, newTone(440, 440, dur, waveSine, testRate))
	if want := testRate.N(dur); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

func TestToneAmplitudeBounds(t *testing.T) {
	waves := map[string]waveType{"sine": waveSine, "square": waveSquare, "saw": waveSaw}
	for name, w := range waves {
		t.Run(name, func(t *testing.T) {
			samples := drain(t, newTone(880, 220, 40*time.Millisecond, w, testRate))
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("Sample %d out of range: %v", i, s)
				}
				if s[0] != s[1] {
					t.Fatalf("Sample %d not mono: %v", i, s)
				}
			}
		})
	}
}

func TestToneProducesSignal(t *testing.T) {
	samples := drain(t, newTone(440, 880, 40*time.Millisecond, waveSquare, testRate))
	var peak float64
	for _, s := range samples {
		if s[0] > peak {
			peak = s[0]
		}
	}
	if peak < 0.5 {
		t.Errorf("Expected audible signal, peak %f", peak)
	}
}

func TestToneNoErr(t *testing.T) {
	s := newTone(440, 440, time.Millisecond, waveSine, testRate)
	if err := s.Err(); err != nil {
		t.Errorf("Expected nil Err, got %v", err)
	}
}

func TestEnvelopeRampsInAndOut(t *testing.T) {
	dur := 50 * time.Millisecond
	ramp := 5 * time.Millisecond
	s := newEnvelope(newTone(440, 440, dur, waveSquare, testRate), dur, ramp, ramp, testRate)
	samples := drain(t, s)

	if len(samples) == 0 {
		t.Fatal("Envelope produced no samples")
	}
	// The very first and last samples sit at the ends of the ramps
	if first := samples[0][0]; first > 0.05 || first < -0.05 {
		t.Errorf("Expected attack to start near silence, got %f", first)
	}
	last := samples[len(samples)-1][0]
	if last > 0.05 || last < -0.05 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}

	// Mid-tone the square wave should be at full swing
	mid := samples[len(samples)/2][0]
	if mid > -0.9 && mid < 0.9 {
		t.Errorf("Expected full amplitude mid-tone, got %f", mid)
	}
}

func TestSoundManagerMuteToggle(t *testing.T) {
	m := NewSoundManager()
	if m.Muted() {
		t.Error("Expected sound on by default")
	}
	m.ToggleMute()
	if !m.Muted() {
		t.Error("Expected muted after toggle")
	}
	m.SetMuted(false)
	if m.Muted() {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

// Playing before Initialize must be a silent no-op, not a crash
func TestPlayWithoutInitialize(t *testing.T) {
	m := NewSoundManager()
	m.PlayEat()
	m.PlayGameOver()
	m.PlayWin()
}
