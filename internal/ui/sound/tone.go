package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// Sample returns the tone's amplitude t seconds in, within [-Volume, Volume].
func (t Tone) Sample(sec float64) float64 {
	return t.Volume * math.Sin(2*math.Pi*t.Freq*sec) * math.Exp(-t.Decay*sec)
}

func (t Tone) samples(sampleRate int) int {
	return int(float64(sampleRate) * t.Duration.Seconds())
}

// PCM renders the tone as signed 16-bit little-endian stereo.
func (t Tone) PCM(sampleRate int) []byte {
	n := t.samples(sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(t.Sample(float64(i)/float64(sampleRate)) * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

type toneGenerator struct {
	tone Tone
	sr   beep.SampleRate
	pos  int
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.tone.Sample(float64(g.pos) / float64(g.sr))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// Streamer plays the tone once through beep.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(t.Duration), &toneGenerator{tone: t, sr: sr})
}
