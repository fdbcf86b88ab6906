package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/stanislavbuket/SnakeGame/internal/app"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		event app.EventType
		cue   Cue
		ok    bool
	}{
		{app.EventFoodEaten, CueEat, true},
		{app.EventGrew, CueGrow, true},
		{app.EventSpeedUp, CueSpeedUp, true},
		{app.EventGameOver, CueDeath, true},
		{app.EventBoardFull, CueDeath, true},
		{app.EventPaused, 0, false},
		{app.EventRestarted, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			cue, ok := CueFor(app.Event{Type: tt.event})
			if ok != tt.ok || (ok && cue != tt.cue) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.cue, tt.ok, cue, ok)
			}
		})
	}
}

func TestEveryCueHasTone(t *testing.T) {
	tones := DefaultTones()
	for _, c := range []Cue{CueEat, CueGrow, CueSpeedUp, CueDeath} {
		tone, ok := tones[c]
		if !ok {
			t.Errorf("Missing tone for %v", c)
			continue
		}
		if tone.Duration <= 0 || tone.Volume <= 0 || tone.Volume > 1 {
			t.Errorf("Bad tone for %v: %+v", c, tone)
		}
	}
}

func TestPCMLayout(t *testing.T) {
	tone := Tone{Freq: 440, Duration: 10 * time.Millisecond, Decay: 3, Volume: 0.5}
	buf := tone.PCM(44100)

	if want := 441 * 4; len(buf) != want {
		t.Fatalf("Expected %d bytes, got %d", want, len(buf))
	}
	if buf[0] != 0 || buf[1] != 0 {
		t.Errorf("Expected silent first sample, got %d %d", buf[0], buf[1])
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
			t.Fatalf("Expected identical channels at sample %d", i/4)
		}
	}
}

func TestToneDecays(t *testing.T) {
	tone := Tone{Freq: 1, Duration: time.Second, Decay: 3, Volume: 1}

	// Peaks of a 1 Hz sine sit at 0.25 s intervals from 0.25 s.
	early := math.Abs(tone.Sample(0.25))
	late := math.Abs(tone.Sample(0.75))
	if late >= early {
		t.Errorf("Expected decay, got %f then %f", early, late)
	}
}

func TestStreamerLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone := Tone{Freq: 440, Duration: 50 * time.Millisecond, Decay: 3, Volume: 0.2}
	s := tone.Streamer(sr)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.2 || buf[i][0] != buf[i][1] {
				t.Fatalf("Bad sample %d: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}

	if want := sr.N(50 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}
