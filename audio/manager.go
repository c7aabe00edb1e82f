// Package audio synthesizes the game's sound cues with beep streamers.
// Everything is generated, no sample assets.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and a mixer the cues are played through
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates an uninitialized manager; call Initialize
// before playing
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker close; an empty mixer
// is the clean shutdown state.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	return !sm.muted.Swap(!sm.muted.Load())
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// SetMuted sets the mute state directly
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// PlayEat plays a short blip when a bug is eaten
func (sm *SoundManager) PlayEat() {
	sm.play(newTone(880, 1320, 70*time.Millisecond, waveSquare, sampleRate),
		70*time.Millisecond, -0.6)
}

// PlayGameOver plays a falling sweep on collision
func (sm *SoundManager) PlayGameOver() {
	sm.play(newTone(440, 90, 600*time.Millisecond, waveSaw, sampleRate),
		600*time.Millisecond, -0.5)
}

// PlayWin plays a rising sweep when the board fills
func (sm *SoundManager) PlayWin() {
	sm.play(newTone(330, 990, 700*time.Millisecond, waveSine, sampleRate),
		700*time.Millisecond, -0.3)
}

// play shapes the streamer and hands it to the mixer
func (sm *SoundManager) play(s beep.Streamer, duration time.Duration, gain float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	shaped := newEnvelope(s, duration, 5*time.Millisecond, 30*time.Millisecond, sampleRate)
	speaker.Lock()
	sm.mixer.Add(&effects.Gain{Streamer: shaped, Gain: gain})
	speaker.Unlock()
}
