// Package beeper plays game sound cues on the default audio device through
// beep's speaker, mixing overlapping cues.
package beeper

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/stanislavbuket/SnakeGame/internal/app"
	"github.com/stanislavbuket/SnakeGame/internal/ui/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tones       map[sound.Cue]sound.Tone
	initialized bool
}

func New() *Beeper {
	return &Beeper{
		mixer: &beep.Mixer{},
		tones: sound.DefaultTones(),
	}
}

func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(b.mixer)
	b.initialized = true
	log.Printf("Sound: speaker ready at %d Hz", sampleRate)
	return nil
}

func (b *Beeper) Play(cue sound.Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	tone, ok := b.tones[cue]
	if !ok {
		return
	}

	speaker.Lock()
	b.mixer.Add(tone.Streamer(sampleRate))
	speaker.Unlock()
}

// OnEvent is an app.Listener.
func (b *Beeper) OnEvent(ev app.Event) {
	if cue, ok := sound.CueFor(ev); ok {
		b.Play(cue)
	}
}

func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
