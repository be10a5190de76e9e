package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// musicBar is one bar of the background loop: bass note then an arpeggio over it
var musicBars = [][]float64{
	{110, 220, 262, 330},
	{98, 196, 247, 294},
	{87, 175, 220, 262},
	{98, 196, 247, 294},
}

const musicStep = 180 * time.Millisecond

// musicLoop regenerates the bar sequence whenever it runs out, looping forever
type musicLoop struct {
	rate    beep.SampleRate
	current beep.Streamer
}

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{rate: rate}
}

func (m *musicLoop) build() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(musicBars))
	for _, bar := range musicBars {
		bass := newVolume(tone(bar[0], bar[0], musicStep*time.Duration(len(bar)), WaveSine, 10*time.Millisecond, musicStep, m.rate), 0.5)
		lead := arpeggio(bar, musicStep, WaveSquare, 0.12, m.rate)
		parts = append(parts, beep.Mix(bass, lead))
	}
	return beep.Seq(parts...)
}

func (m *musicLoop) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if m.current == nil {
			m.current = m.build()
		}
		n, ok := m.current.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			m.current = nil
		}
	}
	return filled, true
}

func (m *musicLoop) Err() error { return nil }
