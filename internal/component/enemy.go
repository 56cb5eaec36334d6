// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID    string  // ID из библиотеки определений врагов.
	Speed    float64 // Базовая скорость движения.
	Strength float64 // Урон при контакте с игроком.
	Level    int     // Уровень врага; попадает в событие смерти.
	Radius   float64 // Радиус тела для контактных столкновений.
}
