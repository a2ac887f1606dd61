// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/ebitengine/oto/v3"
)

// Config describes the output stream.
type Config struct {
	SampleRate int
	Channels   int
	// BufferSize is the device buffer length; 0 lets the driver choose.
	BufferSize time.Duration
	// BlockFrames caps the frames rendered per Render call.
	BlockFrames int
	Log         slog.Logger
}

// Player owns the audio context. Only one may exist per process.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	reader *Reader
	log    slog.Logger

	mtx     sync.Mutex // setup and control only
	started bool
}

// Open initializes the default output device and waits until it is ready.
func Open(cfg Config) (*Player, error) {
	if cfg.Log == nil {
		cfg.Log = slog.Disabled
	}
	if cfg.BlockFrames <= 0 {
		cfg.BlockFrames = 1024
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	reader := NewReader(cfg.Channels, cfg.BlockFrames)
	cfg.Log.Debugf("Audio device ready: %d Hz, %d channels", cfg.SampleRate, cfg.Channels)

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(reader),
		reader: reader,
		log:    cfg.Log,
	}, nil
}

// Attach routes r to the device. It may be called while playing.
func (p *Player) Attach(r Renderer) {
	p.reader.Attach(r)
}

func (p *Player) Start() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
		p.log.Debug("Playback started")
	}
}

func (p *Player) Stop() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.started {
		p.player.Pause()
		p.started = false
		p.log.Debug("Playback paused")
	}
}

// Err reports an asynchronous device error, if any.
func (p *Player) Err() error {
	return p.player.Err()
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.Stop()

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}
