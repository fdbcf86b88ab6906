// Package sfx plays game sound cues through ebiten's audio context.
package sfx

import (
	"log"
	"sync"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/ui/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type Player struct {
	ctx     *audio.Context
	players map[sound.Cue]*audio.Player
	mu      sync.Mutex
}

// NewPlayer renders every cue up front. Only one audio context may exist per
// process.
func NewPlayer() *Player {
	p := &Player{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[sound.Cue]*audio.Player),
	}

	for cue, tone := range sound.DefaultTones() {
		p.players[cue] = p.ctx.NewPlayerFromBytes(tone.PCM(sampleRate))
	}

	log.Printf("Sound: %d cues ready at %d Hz", len(p.players), sampleRate)
	return p
}

func (p *Player) Play(cue sound.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	player, ok := p.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("Sound: failed to rewind %v: %v", cue, err)
		return
	}
	player.Play()
}

// OnEvent is an app.Listener.
func (p *Player) OnEvent(ev app.Event) {
	if cue, ok := sound.CueFor(ev); ok {
		p.Play(cue)
	}
}
