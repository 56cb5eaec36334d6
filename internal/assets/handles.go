// internal/assets/handles.go
package assets

import (
	"image/color"

	"go-spell-arena/internal/element"
)

// Handles — набор визуальных описаний для создаваемых сущностей.
// Nil-набор означает headless-режим: логика сущностей не меняется,
// но компоненты отрисовки к ним не прикрепляются.
type Handles struct {
	effectColors map[element.Element]color.RGBA
}

// Load строит набор описаний из базовых цветов стихий.
func Load() *Handles {
	colors := make(map[element.Element]color.RGBA)
	for _, e := range element.All() {
		colors[e] = e.Color()
	}
	colors[element.None] = element.None.Color()
	return &Handles{effectColors: colors}
}

// EffectColor возвращает цвет эффекта для стихии.
func (h *Handles) EffectColor(e element.Element) color.RGBA {
	if c, ok := h.effectColors[e]; ok {
		return c
	}
	return element.None.Color()
}

// Translucent возвращает цвет стихии с пониженной непрозрачностью,
// для зон и волн, которые не должны перекрывать врагов.
func (h *Handles) Translucent(e element.Element) color.RGBA {
	c := h.EffectColor(e)
	c.A = 90
	return c
}
