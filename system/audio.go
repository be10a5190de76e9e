package system

import (
	"time"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/event"
)

// AudioSystem forwards sound requests to the player
// Playback is fire-and-forget; a silent player swallows everything
type AudioSystem struct {
	engine.SystemBase
	player audio.Player
}

// NewAudioSystem creates an audio system
func NewAudioSystem(ctx *engine.Context, player audio.Player) *AudioSystem {
	return &AudioSystem{SystemBase: engine.NewSystemBase(ctx), player: player}
}

func (s *AudioSystem) Name() string         { return "audio" }
func (s *AudioSystem) Priority() int        { return 0 }
func (s *AudioSystem) Update(time.Duration) {}

func (s *AudioSystem) EventTypes() []event.Type {
	return []event.Type{event.EventSound}
}

func (s *AudioSystem) HandleEvent(ev event.Event) {
	if p, ok := ev.Payload.(*event.SoundPayload); ok {
		s.player.Play(audio.SoundType(p.Sound))
	}
}

// PlaySound queues a sound request on the context
func PlaySound(ctx *engine.Context, s audio.SoundType) {
	ctx.Emit(event.EventSound, &event.SoundPayload{Sound: int(s)})
}
