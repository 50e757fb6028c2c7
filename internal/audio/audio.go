package audio

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// maxBooms limits simultaneous explosion sounds to avoid speaker clipping.
const maxBooms = 2

// System plays procedurally generated effects through oto. A nil *System is
// valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	booms  atomic.Int32
	seq    atomic.Uint64
}

func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	return &System{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

func (s *System) isReady() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// PlayExplosion plays a boom scaled by strength in [0,1]; density in [0,1]
// sets how much debris crackle it carries.
func (s *System) PlayExplosion(strength, density float64) {
	if !s.isReady() {
		return
	}
	if s.booms.Add(1) > maxBooms {
		s.booms.Add(-1)
		return
	}
	seed := s.seq.Add(1) ^ uint64(time.Now().UnixNano())
	s.play(Boom(strength, density, seed), func() { s.booms.Add(-1) })
}

func (s *System) PlayClick() {
	if !s.isReady() {
		return
	}
	s.play(Click(), nil)
}

func (s *System) play(samples []byte, done func()) {
	go func() {
		if done != nil {
			defer done()
		}
		player := s.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
