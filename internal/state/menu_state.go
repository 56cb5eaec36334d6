// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-spell-arena/internal/config"
)

// MenuState — стартовый экран: название, снаряжение и подсказка запуска.
type MenuState struct {
	sm   *StateMachine
	deps *Deps
}

func NewMenuState(sm *StateMachine, deps *Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		sim, err := m.deps.NewSimulation()
		if err != nil {
			log.Printf("MenuState: start failed: %v", err)
			return
		}
		m.sm.SetState(NewPlayState(m.sm, m.deps, sim))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	face := basicfont.Face7x13
	drawCentered(screen, "SPELL ARENA", face, config.ScreenHeight/2-60, config.TextLightColor)
	loadout := fmt.Sprintf("Loadout: %v (level %d)", m.deps.Settings.LoadoutIDs(), m.deps.Settings.SpellLevel)
	drawCentered(screen, loadout, face, config.ScreenHeight/2-20, config.TextLightColor)
	drawCentered(screen, "WASD / arrows to move, Escape to pause", face, config.ScreenHeight/2+20, config.TextLightColor)
	drawCentered(screen, "Press SPACE to start", face, config.ScreenHeight/2+50, config.TextLightColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, s string, face *basicfont.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
}
