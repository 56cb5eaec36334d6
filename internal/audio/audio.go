// internal/audio/audio.go

// Package audio синтезирует короткие звуковые сигналы боя через beep.
// Сэмплов на диске нет: каждый сигнал генерируется на лету.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-spell-arena/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundSystem микширует сигналы по событиям боя. Реализует event.Listener;
// подписку на диспетчер выполняет точка входа.
type SoundSystem struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundSystem создает выключенную звуковую систему.
func NewSoundSystem() *SoundSystem {
	return &SoundSystem{mixer: &beep.Mixer{}}
}

// Initialize открывает динамик и запускает микшер.
func (s *SoundSystem) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*80)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup глушит все активные сигналы. Сам динамик beep не закрывает.
func (s *SoundSystem) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	s.initialized = false
}

// OnEvent реализует интерфейс event.Listener.
func (s *SoundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpellCast:
		s.play(time.Millisecond*120, newSweep(sampleRate, 320, 680))
	case event.EnemyDestroyed:
		s.play(time.Millisecond*90, newThump(sampleRate))
	case event.MatchLevelUp:
		s.play(time.Millisecond*350, newChime(sampleRate))
	case event.PlayerDied:
		s.play(time.Millisecond*600, newBuzz(sampleRate, 90))
	}
}

func (s *SoundSystem) play(d time.Duration, g beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// sweepGenerator — восходящий тон каста: частота скользит от from к to.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	span     int
}

func newSweep(sr beep.SampleRate, from, to float64) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, span: sr.N(time.Millisecond * 120)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress
		envelope := 1.0 - progress
		sample := 0.18 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// thumpGenerator — глухой удар гибели врага: падающая частота, резкий спад.
type thumpGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newThump(sr beep.SampleRate) *thumpGenerator {
	return &thumpGenerator{sr: sr}
}

func (g *thumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)
		freq := 150 * (1 - t*4)
		if freq < 40 {
			freq = 40
		}
		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thumpGenerator) Err() error { return nil }

// chimeGenerator — двухнотный сигнал повышения уровня.
type chimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newChime(sr beep.SampleRate) *chimeGenerator {
	return &chimeGenerator{sr: sr}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(time.Millisecond * 160)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 523.25 // C5, вторая нота — E5.
		if g.pos >= noteLen {
			freq = 659.25
		}
		notePos := g.pos % noteLen
		envelope := math.Exp(-float64(notePos) / float64(g.sr) * 10)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error { return nil }

// buzzGenerator — низкое жужжание гибели игрока: основной тон с гармониками.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.03, 1.0)
		release := math.Exp(-t * 3)
		sample *= attack * release

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }
