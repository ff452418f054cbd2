package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the draw's sound effects through a single mixer
// Every method is safe to call before Initialize or after Cleanup; audio is optional
type SoundManager struct {
	mu           sync.Mutex
	spinStreamer *beep.Ctrl
	mixer        *beep.Mixer
	volume       *effects.Volume
	initialized  bool
	muted        bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   0,
		},
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.spinStreamer != nil {
		sm.spinStreamer.Paused = true
		sm.spinStreamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer keeps the device silent
	sm.initialized = false
}

// SetMuted silences or restores output without dropping running sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlaySpin starts the looping whirr heard while the reel scrolls
func (sm *SoundManager) PlaySpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Already playing, don't restart
	if sm.spinStreamer != nil && !sm.spinStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewWhirrGenerator(sampleRate), Paused: false}
	speaker.Lock()
	sm.spinStreamer = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopSpin stops the whirr
func (sm *SoundManager) StopSpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.spinStreamer == nil {
		return
	}
	speaker.Lock()
	sm.spinStreamer.Paused = true
	speaker.Unlock()
}

// PlayWin plays the rising chime for a landed winner
func (sm *SoundManager) PlayWin() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*chimeDurationMs), NewChimeGenerator(sampleRate)))
}

// PlayError plays a short low buzz
func (sm *SoundManager) PlayError() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*errorBuzzDurationMs), NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
