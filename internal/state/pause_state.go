// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-spell-arena/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза поверх замершего боя.
type PauseState struct {
	sm       *StateMachine
	previous *PlayState
}

func NewPauseState(sm *StateMachine, previous *PlayState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 128}, false)
	drawCentered(screen, "PAUSED", basicfont.Face7x13, config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, "Escape / Space to resume", basicfont.Face7x13, config.ScreenHeight/2+30, config.TextLightColor)
}

func (s *PauseState) Exit() {}
