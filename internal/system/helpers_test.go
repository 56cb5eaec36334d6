// internal/system/helpers_test.go
package system

import (
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/event"
	"go-spell-arena/internal/types"
)

// newWorld — чистый мир и шина для одного теста.
func newWorld() (*entity.ECS, *event.Bus) {
	return entity.NewECS(), event.NewBus()
}

// addEnemy ставит в точку врага со стандартным боевым набором компонентов.
func addEnemy(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Enemies[id] = &component.Enemy{
		DefID:    "ENEMY_GRUNT",
		Speed:    1.7,
		Strength: 10,
		Level:    1,
		Radius:   0.5,
	}
	ecs.Healths[id] = component.NewHealth(100)
	ecs.Mortals[id] = &component.Mortal{Cause: component.CauseEnemy}
	return id
}

// addPlayer ставит в точку игрока со стандартным набором компонентов.
func addPlayer(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Players[id] = &component.Player{Speed: 6.0, PickupRadius: 3.0, Radius: 1.5}
	ecs.Healths[id] = component.NewHealth(100)
	ecs.Mortals[id] = &component.Mortal{Cause: component.CausePlayer}
	return id
}

// recordingListener копит полученные события для проверок.
type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
