package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped oscillator voice
func tone(freq, endFreq float64, d time.Duration, wave WaveType, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, endFreq, d, wave, rate), d, attack, release, rate)
}

// CreateShootSound is a falling square chirp
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	return newVolume(tone(1400, 500, d, WaveSquare, 2*time.Millisecond, 40*time.Millisecond, rate), 0.35)
}

// CreateEnemyShootSound is a lower saw chirp
func CreateEnemyShootSound(rate beep.SampleRate) beep.Streamer {
	d := 110 * time.Millisecond
	return newVolume(tone(700, 250, d, WaveSaw, 2*time.Millisecond, 50*time.Millisecond, rate), 0.25)
}

// CreateHitSound is a short noise tick over a low thump
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	return beep.Mix(
		newVolume(tone(0, 0, d, WaveNoise, time.Millisecond, 50*time.Millisecond, rate), 0.3),
		newVolume(tone(180, 90, d, WaveSine, time.Millisecond, 40*time.Millisecond, rate), 0.5),
	)
}

// CreateExplosionSound is a long noise burst with a descending rumble
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	return beep.Mix(
		newVolume(tone(0, 0, d, WaveNoise, 5*time.Millisecond, 350*time.Millisecond, rate), 0.5),
		newVolume(tone(120, 40, d, WaveSine, 5*time.Millisecond, 300*time.Millisecond, rate), 0.6),
	)
}

// CreatePickupSound is a rising two-note chime
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	d := 80 * time.Millisecond
	return beep.Seq(
		newVolume(tone(988, 988, d, WaveSine, 5*time.Millisecond, 30*time.Millisecond, rate), 0.5),
		newVolume(tone(1319, 1319, 2*d, WaveSine, 5*time.Millisecond, 100*time.Millisecond, rate), 0.5),
	)
}

// CreateShieldSound is a rising saw sweep
func CreateShieldSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return newVolume(tone(200, 900, d, WaveSaw, 20*time.Millisecond, 120*time.Millisecond, rate), 0.3)
}

// CreateAlertSound is a double square beep
func CreateAlertSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	gap := beep.Silence(rate.N(60 * time.Millisecond))
	return beep.Seq(
		newVolume(tone(880, 880, d, WaveSquare, 2*time.Millisecond, 20*time.Millisecond, rate), 0.25),
		gap,
		newVolume(tone(880, 880, d, WaveSquare, 2*time.Millisecond, 20*time.Millisecond, rate), 0.25),
	)
}

// CreatePassSound is a quick whoosh through the wall
func CreatePassSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Mix(
		newVolume(tone(0, 0, d, WaveNoise, 20*time.Millisecond, 120*time.Millisecond, rate), 0.2),
		newVolume(tone(600, 1200, d, WaveSine, 10*time.Millisecond, 100*time.Millisecond, rate), 0.3),
	)
}

// CreateCrashSound is a harsh low buzz
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	d := 400 * time.Millisecond
	return beep.Mix(
		newVolume(tone(110, 55, d, WaveSaw, 2*time.Millisecond, 250*time.Millisecond, rate), 0.5),
		newVolume(tone(0, 0, d/2, WaveNoise, 2*time.Millisecond, 150*time.Millisecond, rate), 0.4),
	)
}

// arpeggio plays notes in sequence with equal length
func arpeggio(notes []float64, step time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = newVolume(tone(f, f, step, wave, 5*time.Millisecond, step/2, rate), vol)
	}
	return beep.Seq(parts...)
}

// CreateStageClearSound is a major arpeggio
func CreateStageClearSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio([]float64{523, 659, 784, 1047}, 110*time.Millisecond, WaveSine, 0.45, rate)
}

// CreateVictorySound is a longer fanfare
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	return arpeggio([]float64{392, 523, 659, 784, 659, 1047}, 150*time.Millisecond, WaveSquare, 0.25, rate)
}

// CreateGameOverSound is a descending minor line
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio([]float64{440, 415, 392, 330}, 220*time.Millisecond, WaveSaw, 0.3, rate)
}

var soundFactories = [soundTypeCount]func(beep.SampleRate) beep.Streamer{
	SoundShoot:      CreateShootSound,
	SoundEnemyShoot: CreateEnemyShootSound,
	SoundHit:        CreateHitSound,
	SoundExplosion:  CreateExplosionSound,
	SoundPickup:     CreatePickupSound,
	SoundShield:     CreateShieldSound,
	SoundAlert:      CreateAlertSound,
	SoundPass:       CreatePassSound,
	SoundCrash:      CreateCrashSound,
	SoundStageClear: CreateStageClearSound,
	SoundVictory:    CreateVictorySound,
	SoundGameOver:   CreateGameOverSound,
}

// GetSoundEffect builds a fresh streamer for soundType at master volume
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, master float64) (beep.Streamer, error) {
	if soundType < 0 || soundType >= soundTypeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, soundType)
	}
	return newVolume(soundFactories[soundType](rate), master), nil
}
