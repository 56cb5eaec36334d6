// internal/event/queue.go
package event

import (
	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/element"
	"go-spell-arena/internal/types"
)

// DamageEvent — запрос на нанесение урона. Source равен нулю, когда
// источник не важен или уже не существует.
type DamageEvent struct {
	Target  types.EntityID
	Amount  float64
	Element element.Element
	Source  types.EntityID
}

// DeathEvent — сущность с компонентом Mortal исчерпала здоровье.
type DeathEvent struct {
	Entity   types.EntityID
	Position geom.Vec2
	Cause    component.DeathCause
}

// EnemyDeathEvent — враг убит и будет удален из мира.
type EnemyDeathEvent struct {
	Entity   types.EntityID
	Position geom.Vec2
	Level    int
}

// LootDropEvent — точка выпадения добычи.
type LootDropEvent struct {
	Position geom.Vec2
	Level    int
}

// Bus — пошаговые очереди боевого конвейера. События пишутся в ходе
// шага и выбираются потребителем ровно один раз; всё, что записано
// после выборки, остается до следующего шага. Это очереди, а не журнал.
type Bus struct {
	damage      []DamageEvent
	deaths      []DeathEvent
	enemyDeaths []EnemyDeathEvent
	lootDrops   []LootDropEvent
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) PushDamage(e DamageEvent) {
	b.damage = append(b.damage, e)
}

// DrainDamage возвращает накопленные события урона и очищает очередь.
func (b *Bus) DrainDamage() []DamageEvent {
	out := b.damage
	b.damage = nil
	return out
}

func (b *Bus) PushDeath(e DeathEvent) {
	b.deaths = append(b.deaths, e)
}

func (b *Bus) DrainDeaths() []DeathEvent {
	out := b.deaths
	b.deaths = nil
	return out
}

func (b *Bus) PushEnemyDeath(e EnemyDeathEvent) {
	b.enemyDeaths = append(b.enemyDeaths, e)
}

func (b *Bus) DrainEnemyDeaths() []EnemyDeathEvent {
	out := b.enemyDeaths
	b.enemyDeaths = nil
	return out
}

func (b *Bus) PushLoot(e LootDropEvent) {
	b.lootDrops = append(b.lootDrops, e)
}

func (b *Bus) DrainLoot() []LootDropEvent {
	out := b.lootDrops
	b.lootDrops = nil
	return out
}

// PendingDamage — число событий урона, еще не выбранных из очереди.
func (b *Bus) PendingDamage() int {
	return len(b.damage)
}
