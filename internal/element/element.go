// internal/element/element.go
package element

import "image/color"

// Element — стихия урона. Определяет, какие вторичные дебаффы
// и множители применяются при попадании.
type Element int

const (
	None Element = iota
	Fire
	Frost
	Poison
	Lightning
	Light
	Dark
	Chaos
	Psychic
)

// Name возвращает отображаемое имя стихии.
func (e Element) Name() string {
	switch e {
	case Fire:
		return "Fire"
	case Frost:
		return "Frost"
	case Poison:
		return "Poison"
	case Lightning:
		return "Lightning"
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case Chaos:
		return "Chaos"
	case Psychic:
		return "Psychic"
	default:
		return "None"
	}
}

// Color возвращает базовый цвет стихии для визуальных эффектов.
func (e Element) Color() color.RGBA {
	switch e {
	case Fire:
		return color.RGBA{255, 128, 0, 255}
	case Frost:
		return color.RGBA{135, 206, 235, 255}
	case Poison:
		return color.RGBA{0, 255, 0, 255}
	case Lightning:
		return color.RGBA{255, 255, 0, 255}
	case Light:
		return color.RGBA{255, 255, 255, 255}
	case Dark:
		return color.RGBA{128, 0, 128, 255}
	case Chaos:
		return color.RGBA{255, 0, 255, 255}
	case Psychic:
		return color.RGBA{255, 182, 193, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

// All перечисляет все стихии в фиксированном порядке.
func All() []Element {
	return []Element{Fire, Frost, Poison, Lightning, Light, Dark, Chaos, Psychic}
}

// ByName возвращает стихию по имени. Неизвестное имя — None.
func ByName(name string) Element {
	for _, e := range All() {
		if e.Name() == name {
			return e
		}
	}
	return None
}
