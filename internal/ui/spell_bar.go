// internal/ui/spell_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpellSlot — данные одного слота панели: цвет стихии и готовность
// перезарядки от 0 до 1.
type SpellSlot struct {
	Color color.RGBA
	Ready float64
}

// SpellBar отображает снаряженные заклинания и их перезарядки.
type SpellBar struct {
	X, Y float32
}

const (
	slotSize   = 34
	slotGap    = 8
	slotBorder = 1
)

var slotBackColor = color.RGBA{30, 28, 40, 220}

// NewSpellBar создает панель заклинаний с якорем в левом верхнем углу
// первого слота.
func NewSpellBar(x, y float32) *SpellBar {
	return &SpellBar{X: x, Y: y}
}

// Draw отрисовывает слоты слева направо. Заполнение цветом стихии
// растет снизу вверх по мере готовности заклинания.
func (b *SpellBar) Draw(screen *ebiten.Image, slots []SpellSlot) {
	for i, slot := range slots {
		x := b.X + float32(i)*(slotSize+slotGap)
		vector.DrawFilledRect(screen, x, b.Y, slotSize, slotSize, slotBackColor, true)

		ready := float32(slot.Ready)
		if ready > 1 {
			ready = 1
		}
		if ready < 0 {
			ready = 0
		}
		fillHeight := float32(slotSize-slotBorder*2) * ready
		if fillHeight > 0 {
			vector.DrawFilledRect(screen, x+slotBorder, b.Y+slotSize-slotBorder-fillHeight,
				slotSize-slotBorder*2, fillHeight, slot.Color, true)
		}
		vector.StrokeRect(screen, x, b.Y, slotSize, slotSize, slotBorder, borderColor, true)
	}
}

// SpellBarWidth возвращает полную ширину панели из slots слотов,
// для выравнивания по экрану.
func SpellBarWidth(slots int) float32 {
	if slots <= 0 {
		return 0
	}
	return float32(slots*slotSize + (slots-1)*slotGap)
}
