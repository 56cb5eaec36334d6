// internal/component/combat.go
package component

// Health — компонент здоровья.
type Health struct {
	Value float64
	Max   float64
}

// NewHealth создает компонент с полным запасом здоровья.
func NewHealth(max float64) *Health {
	return &Health{Value: max, Max: max}
}

// TakeDamage уменьшает здоровье, не опускаясь ниже нуля.
func (h *Health) TakeDamage(amount float64) {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Heal восстанавливает здоровье, не превышая максимум.
func (h *Health) Heal(amount float64) {
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// IsDead — здоровье исчерпано.
func (h *Health) IsDead() bool {
	return h.Value <= 0
}

// Percentage возвращает долю оставшегося здоровья в [0, 1].
func (h *Health) Percentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Invincibility — окно неуязвимости после получения урона.
// Пока компонент присутствует, весь входящий урон игнорируется.
type Invincibility struct {
	Timer float64 // Оставшееся время окна.
}

// DeathCause — тип погибшей сущности в событии смерти.
type DeathCause int

const (
	CauseEnemy DeathCause = iota
	CausePlayer
)

// Mortal помечает сущность, за чьим здоровьем следит система смерти.
// Сущности без этого компонента (снаряды, зоны, эффекты) событий смерти
// не порождают.
type Mortal struct {
	Cause DeathCause
}
