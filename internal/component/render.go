// internal/component/render.go
package component

import "image/color"

// Renderable — визуальное представление сущности. Компонент создается
// только при наличии визуальных ресурсов; в headless-режиме сущности
// существуют без него.
type Renderable struct {
	Color     color.RGBA
	Radius    float64
	Ring      bool // Рисовать кольцом (волны), а не заливкой.
	HasStroke bool
}
