// internal/ui/level_progress.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelProgress отображает продвижение к следующему уровню матча.
type LevelProgress struct {
	X, Y float32
}

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	borderWidth       = 1
)

var (
	progressFillColor = color.RGBA{70, 100, 120, 220}
	borderColor       = color.White
)

// NewLevelProgress создает индикатор прогресса уровня.
func NewLevelProgress(x, y float32) *LevelProgress {
	return &LevelProgress{X: x, Y: y}
}

// Draw отрисовывает полосу: заполнение — убийства на текущем уровне
// относительно квоты уровня.
func (i *LevelProgress) Draw(screen *ebiten.Image, kills, quota int) {
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if quota > 0 {
		fillRatio = float64(kills) / float64(quota)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth,
			fillWidth, progressBarHeight-borderWidth*2, progressFillColor, true)
	}
}
