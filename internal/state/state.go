// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/trace"

	"go-spell-arena/internal/app"
	"go-spell-arena/internal/assets"
	"go-spell-arena/internal/audio"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/event"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Deps — зависимости, разделяемые всеми состояниями: из них собирается
// каждый новый прогон симуляции.
type Deps struct {
	Settings *config.Settings
	Handles  *assets.Handles
	Tracer   trace.Tracer
	Sound    *audio.SoundSystem // nil — звук выключен.
}

// NewSimulation собирает прогон и подключает звук к его событиям.
// Каждый прогон владеет собственным диспетчером, поэтому подписка
// выполняется заново при каждом рестарте.
func (d *Deps) NewSimulation() (*app.Simulation, error) {
	sim, err := app.NewSimulation(d.Settings, d.Handles, d.Tracer)
	if err != nil {
		return nil, err
	}
	if d.Sound != nil {
		for _, t := range []event.EventType{
			event.SpellCast,
			event.EnemyDestroyed,
			event.MatchLevelUp,
			event.PlayerDied,
		} {
			sim.Dispatcher.Subscribe(t, d.Sound)
		}
	}
	return sim, nil
}
