// Package audio plays short procedurally generated sound effects.
package audio

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"orbdash/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	DefaultVolume = 0.58

	// More simultaneous explosions than this clip the speakers.
	maxExplosions = 2
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundCollect Sound = iota
	SoundLevelUp
	SoundDash
	SoundExplosion
)

func (s Sound) String() string {
	switch s {
	case SoundCollect:
		return "collect"
	case SoundLevelUp:
		return "level-up"
	case SoundDash:
		return "dash"
	case SoundExplosion:
		return "explosion"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Engine owns the oto context. A muted Engine opens no audio device.
type Engine struct {
	ctx   *oto.Context
	ready chan struct{}

	volume     float64
	muted      atomic.Bool
	explosions atomic.Int32
	variant    atomic.Uint64

	// Deterministic effects are rendered once.
	cache map[Sound][]byte
}

// New opens the audio device. With muted set no device is opened.
func New(muted bool) (*Engine, error) {
	e := &Engine{volume: DefaultVolume}
	if muted {
		e.muted.Store(true)
		return e, nil
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	e.ctx = ctx
	e.ready = ready
	e.cache = map[Sound][]byte{
		SoundCollect: genCollect(),
		SoundLevelUp: genLevelUp(),
		SoundDash:    genDash(),
	}
	return e, nil
}

// SetMuted toggles playback without closing the device.
func (e *Engine) SetMuted(m bool) { e.muted.Store(m) }

// SetVolume sets the effect volume in [0,1]. Call before playing.
func (e *Engine) SetVolume(vol float64) {
	e.volume = game.Clamp(vol, 0, 1)
}

// Attach plays the matching effect for each game event.
func (e *Engine) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventCollect, func(game.Event) { e.Play(SoundCollect) })
	bus.Subscribe(game.EventLevelUp, func(game.Event) { e.Play(SoundLevelUp) })
	bus.Subscribe(game.EventDash, func(game.Event) { e.Play(SoundDash) })
	bus.Subscribe(game.EventDeath, func(game.Event) { e.Play(SoundExplosion) })
}

// Play starts s on its own goroutine and returns immediately.
// It is a no-op while muted or before the device is ready.
func (e *Engine) Play(s Sound) {
	if e.ctx == nil || e.muted.Load() {
		return
	}
	select {
	case <-e.ready:
	default:
		return
	}

	var samples []byte
	if s == SoundExplosion {
		if e.explosions.Add(1) > maxExplosions {
			e.explosions.Add(-1)
			return
		}
		samples = genExplosion(e.variant.Add(1) ^ uint64(time.Now().UnixNano()))
	} else {
		samples = e.cache[s]
	}
	if len(samples) == 0 {
		if s == SoundExplosion {
			e.explosions.Add(-1)
		}
		return
	}

	go func() {
		if s == SoundExplosion {
			defer e.explosions.Add(-1)
		}
		player := e.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(e.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// soundReader streams a shared, read-only PCM buffer.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
