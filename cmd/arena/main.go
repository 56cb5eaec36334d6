// cmd/arena/main.go
package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/trace"

	"go-spell-arena/internal/assets"
	"go-spell-arena/internal/audio"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/defs"
	"go-spell-arena/internal/state"
	"go-spell-arena/internal/telemetry"
)

// AppGame прокидывает кадры ebiten в машину состояний.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if settings.DefsDir != "" {
		if err := loadDefsOverrides(settings.DefsDir); err != nil {
			log.Fatalf("defs: %v", err)
		}
	}

	var tracer trace.Tracer
	if settings.Telemetry {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Fatalf("telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
		tracer = telemetry.Tracer("simulation")
	}

	var sound *audio.SoundSystem
	if settings.Audio {
		sound = audio.NewSoundSystem()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	var handles *assets.Handles
	if !settings.Headless {
		handles = assets.Load()
	}

	deps := &state.Deps{
		Settings: settings,
		Handles:  handles,
		Tracer:   tracer,
		Sound:    sound,
	}

	if settings.Headless {
		runHeadless(deps)
		return
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, deps))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spell Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// runHeadless прогоняет бой фиксированным шагом без окна и выводит итог.
func runHeadless(deps *state.Deps) {
	sim, err := deps.NewSimulation()
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}

	log.Printf("run %s: headless, up to %d steps of %.4fs, seed %d",
		sim.RunID, deps.Settings.HeadlessSteps, deps.Settings.StepSeconds, deps.Settings.Seed)

	for i := 0; i < deps.Settings.HeadlessSteps; i++ {
		sim.Step(deps.Settings.StepSeconds)
		if sim.GameOver() {
			break
		}
	}

	stats := sim.ECS.Stats
	log.Printf("run %s: %d steps, score %d, kills %d, level %d, survived %.1fs, game over %v",
		sim.RunID, sim.Steps(), stats.Score, stats.Kills, stats.MatchLevel, stats.SurvivalTime, sim.GameOver())
}

// loadDefsOverrides подхватывает JSON-переопределения библиотек из каталога.
// Отсутствующий файл не ошибка: переопределять можно любую библиотеку отдельно.
func loadDefsOverrides(dir string) error {
	spells := filepath.Join(dir, "spells.json")
	if _, err := os.Stat(spells); err == nil {
		if err := defs.LoadSpellDefinitions(spells); err != nil {
			return err
		}
		log.Printf("defs: spell overrides loaded from %s", spells)
	}

	enemies := filepath.Join(dir, "enemies.json")
	if _, err := os.Stat(enemies); err == nil {
		if err := defs.LoadEnemyDefinitions(enemies); err != nil {
			return err
		}
		log.Printf("defs: enemy overrides loaded from %s", enemies)
	}
	return nil
}
