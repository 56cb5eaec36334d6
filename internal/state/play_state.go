// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-spell-arena/internal/app"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/ui"
	"go-spell-arena/pkg/geom"
	"go-spell-arena/pkg/render"
)

// PlayState — идущий бой: читает ввод, шагает симуляцию и рисует арену.
type PlayState struct {
	sm       *StateMachine
	deps     *Deps
	sim      *app.Simulation
	renderer *render.ArenaRenderer
	spellBar *ui.SpellBar
	progress *ui.LevelProgress
}

func NewPlayState(sm *StateMachine, deps *Deps, sim *app.Simulation) *PlayState {
	slots := len(sim.CastingSystem.Spells())
	barX := (config.ScreenWidth - ui.SpellBarWidth(slots)) / 2
	return &PlayState{
		sm:       sm,
		deps:     deps,
		sim:      sim,
		renderer: render.NewArenaRenderer(deps.Handles, config.ScreenWidth, config.ScreenHeight),
		spellBar: ui.NewSpellBar(barX, config.ScreenHeight-50),
		progress: ui.NewLevelProgress(12, 30),
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}

	p.sim.SetPlayerInput(readMoveInput())
	p.sim.Step(deltaTime)

	if p.sim.GameOver() {
		p.sm.SetState(NewGameOverState(p.sm, p.deps, p))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.sim.ECS)

	slots := make([]ui.SpellSlot, 0, len(p.sim.CastingSystem.Spells()))
	for _, sp := range p.sim.CastingSystem.Spells() {
		ready := 1.0
		if full := sp.Def.Cooldown(sp.Level); full > 0 {
			ready = 1 - sp.Cooldown/full
		}
		slots = append(slots, ui.SpellSlot{
			Color: p.deps.Handles.EffectColor(element.ByName(sp.Def.Element)),
			Ready: ready,
		})
	}
	p.spellBar.Draw(screen, slots)

	stats := p.sim.ECS.Stats
	p.progress.Draw(screen, stats.KillsThisLevel, stats.KillsPerLevel)
}

func (p *PlayState) Exit() {}

// readMoveInput собирает направление движения из WASD и стрелок.
// Нормализацию выполняет симуляция.
func readMoveInput() geom.Vec2 {
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X += 1
	}
	return dir
}
