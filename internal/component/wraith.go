// internal/component/wraith.go
package component

import "go-spell-arena/internal/element"

// WraithForm — бафф неосязаемости на носителе: враги, сквозь которых
// проходит носитель, получают урон, но не более одного раза за одну
// активацию. Контактный урон по носителю на время баффа подавлен.
type WraithForm struct {
	TimeLeft     float64
	Damage       float64
	ContactRange float64
	Element      element.Element
	ActivationID uint64 // Монотонный номер активации, выданный миром.
}

// WraithMark — отметка "уже задет" на враге. Хранит номер активации:
// отметка от старой активации не защищает от новой.
type WraithMark struct {
	ActivationID uint64
}
