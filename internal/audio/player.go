// Package audio is the audio collaborator: it consumes discrete gameplay
// events and owns all playback. Sounds are synthesized on the fly through
// beep streamers; nothing is loaded from disk.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player manages all game audio. A Player that failed to initialize (or
// was constructed with audio disabled) accepts every call as a no-op, so
// the game runs identically with or without a working audio device.
type Player struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicOn     bool
	initialized bool
}

// NewPlayer creates a player with the configured master volume.
// Call Init before use; a disabled config skips initialization entirely.
func NewPlayer(cfg config.AudioConfig) *Player {
	p := &Player{
		volume: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
	}
	if !cfg.Enabled {
		p.volume = 0
	}
	return p
}

// Init opens the speaker and attaches the mixer. Returns an error when the
// audio device is unavailable; the player then stays in silent mode.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.volume == 0 {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the output. The speaker stays open; clearing the mixer
// drops every active streamer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = false
	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// HandleEvent routes a gameplay event to the matching sound.
func (p *Player) HandleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventEat:
		p.playEat()
	case game.EventGameOver:
		p.StopMusic()
		p.playGameOver()
	case game.EventMusicOn:
		p.StartMusic()
	case game.EventMusicOff:
		p.StopMusic()
	}
}

// StartMusic starts (or resumes) the looping background track.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = true
	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = false
		return
	}

	ctrl := &beep.Ctrl{Streamer: newMusicGenerator(sampleRate, p.volume)}
	p.music = ctrl
	p.mixer.Add(ctrl)
}

// StopMusic pauses the background track.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = false
	if !p.initialized || p.music == nil {
		return
	}

	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the background track is active. In silent
// mode it tracks the requested state so callers behave identically with or
// without a working audio device.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

// playEat plays the short food pickup blip.
func (p *Player) playEat() {
	p.playEffect(sampleRate.N(time.Millisecond*80), newBlipGenerator(sampleRate, p.volume))
}

// playGameOver plays the descending game-over sweep.
func (p *Player) playGameOver() {
	p.playEffect(sampleRate.N(time.Millisecond*900), newSweepGenerator(sampleRate, p.volume))
}

// playEffect mixes in a one-shot effect truncated to n samples.
func (p *Player) playEffect(n int, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(beep.Take(n, s))
	speaker.Unlock()
}
