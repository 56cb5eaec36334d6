// internal/component/status_effect.go
package component

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/types"
)

// Burn — одиночный периодический урон (поджог). Повторное наложение
// обновляет длительность, но не усиливает урон за тик.
type Burn struct {
	TimeLeft      float64 // Оставшаяся длительность эффекта.
	TickTimer     float64 // Время до следующего тика урона.
	TickInterval  float64
	DamagePerTick float64
}

// Refresh сбрасывает длительность на полную.
func (b *Burn) Refresh(duration float64) {
	b.TimeLeft = duration
}

// PoisonStack — складывающийся яд. Каждое наложение добавляет стак
// до предела и всегда обновляет длительность.
type PoisonStack struct {
	Stacks         int
	MaxStacks      int
	DamagePerStack float64
	TickTimer      float64
	TickInterval   float64
	TimeLeft       float64
	Duration       float64 // Полная длительность для сброса при наложении.
}

// AddStack добавляет один стак (не выше предела) и обновляет длительность.
func (p *PoisonStack) AddStack() {
	if p.Stacks < p.MaxStacks {
		p.Stacks++
	}
	p.TimeLeft = p.Duration
}

// TickDamage — урон одного тика при текущем числе стаков.
func (p *PoisonStack) TickDamage() float64 {
	return float64(p.Stacks) * p.DamagePerStack
}

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// Refresh сбрасывает длительность, не меняя множитель.
func (s *SlowEffect) Refresh(duration float64) {
	s.Timer = duration
}

// Frozen полностью останавливает движение цели. Простой обратный отсчет.
type Frozen struct {
	TimeLeft float64
}

// FreezeBuildup — накопление заморозки от урона стихией льда.
// На пределе стаков превращается в Frozen и удаляется.
type FreezeBuildup struct {
	Stacks        int
	MaxStacks     int
	DecayTimer    float64 // Время до потери одного стака.
	DecayInterval float64
}

// AddStack добавляет стак и заново откладывает распад.
func (f *FreezeBuildup) AddStack() {
	if f.Stacks < f.MaxStacks {
		f.Stacks++
	}
	f.DecayTimer = f.DecayInterval
}

// IsMax — достигнут ли предел стаков.
func (f *FreezeBuildup) IsMax() bool {
	return f.Stacks >= f.MaxStacks
}

// Stun — оглушение: цель не двигается и не атакует.
type Stun struct {
	TimeLeft      float64
	OriginalSpeed float64 // Скорость цели на момент оглушения.
}

// Confusion — враг теряет цель: периодически выбирает случайного
// соседнего врага или блуждает, атакуя только в упор.
type Confusion struct {
	TimeLeft         float64
	RetargetTimer    float64 // Время до следующей смены цели.
	RetargetInterval float64
	TargetID         types.EntityID // 0 — цели нет, враг блуждает.
	WanderDirection  geom.Vec2      // Направление блуждания без цели.
	SpeedFactor      float64        // Замешательство слегка ускоряет.
}

// Refresh сбрасывает длительность, сохраняя текущую цель.
func (c *Confusion) Refresh(duration float64) {
	c.TimeLeft = duration
}

// Neurotoxin — нейротоксин: к направлению движения цели добавляется
// случайное дрожание. Повторное наложение обновляет длительность,
// но не усиливает амплитуду.
type Neurotoxin struct {
	TimeLeft       float64
	JitterAmount   float64 // Максимальное отклонение в радианах.
	JitterTimer    float64 // Время до смены направления дрожания.
	JitterInterval float64
	CurrentJitter  geom.Vec2
}

// Refresh сбрасывает длительность, сохраняя амплитуду.
func (n *Neurotoxin) Refresh(duration float64) {
	n.TimeLeft = duration
}
