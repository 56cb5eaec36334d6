// internal/state/gameover_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-spell-arena/internal/config"
)

// GameOverState — итог прогона поверх последнего кадра боя.
type GameOverState struct {
	sm       *StateMachine
	deps     *Deps
	previous *PlayState
}

func NewGameOverState(sm *StateMachine, deps *Deps, previous *PlayState) *GameOverState {
	return &GameOverState{sm: sm, deps: deps, previous: previous}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		sim, err := g.deps.NewSimulation()
		if err != nil {
			log.Printf("GameOverState: restart failed: %v", err)
			return
		}
		g.sm.SetState(NewPlayState(g.sm, g.deps, sim))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.deps))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	g.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 160}, false)

	stats := g.previous.sim.ECS.Stats
	face := basicfont.Face7x13
	drawCentered(screen, "GAME OVER", face, config.ScreenHeight/2-40, config.TextLightColor)
	summary := fmt.Sprintf("Score %d   Kills %d   Level %d   Survived %s",
		stats.Score, stats.Kills, stats.MatchLevel, formatDuration(stats.SurvivalTime))
	drawCentered(screen, summary, face, config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, "SPACE to restart, Escape for menu", face, config.ScreenHeight/2+40, config.TextLightColor)
}

func (g *GameOverState) Exit() {}

func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
