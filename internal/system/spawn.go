// internal/system/spawn.go
package system

import (
	"math"
	"sort"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/assets"
	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/defs"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/utils"
)

// SpawnSystem подселяет врагов по ускоряющемуся темпу: частота
// удваивается каждые SpawnRampInterval секунд. Точка спавна — кольцо
// вокруг игрока; тип врага выбирается взвешенно из библиотеки.
type SpawnSystem struct {
	ecs         *entity.ECS
	rng         *utils.PRNGService
	handles     *assets.Handles
	table       []utils.Weighted
	accumulator float64
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, handles *assets.Handles) *SpawnSystem {
	// Таблица весов собирается один раз; устойчивый порядок нужен для
	// воспроизводимости выбора при фиксированном зерне.
	ids := make([]string, 0, len(defs.EnemyLibrary))
	for id := range defs.EnemyLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	table := make([]utils.Weighted, 0, len(ids))
	for _, id := range ids {
		def := defs.EnemyLibrary[id]
		table = append(table, utils.Weighted{ID: def.ID, Weight: def.Weight})
	}
	return &SpawnSystem{ecs: ecs, rng: rng, handles: handles, table: table}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	rate := config.BaseSpawnRate * math.Pow(2, s.ecs.GameTime/config.SpawnRampInterval)
	s.accumulator += rate * deltaTime
	for s.accumulator >= 1 {
		s.accumulator--
		s.spawnOne()
	}
}

func (s *SpawnSystem) spawnOne() {
	defID := s.rng.ChooseWeighted(s.table)
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		return
	}

	var center geom.Vec2
	if id, ok := playerID(s.ecs); ok {
		if pos, ok := s.ecs.Positions[id]; ok {
			center = pos.Vec()
		}
	}
	angle := s.rng.Angle()
	dist := config.SpawnDistanceMin + s.rng.Float64()*config.SpawnDistanceVar
	at := center.Add(geom.FromAngle(angle).Scale(dist))

	matchLevel := s.ecs.Stats.MatchLevel
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	clampToArena(s.ecs.Positions[id])
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:    def.ID,
		Speed:    def.Speed,
		Strength: def.ScaledStrength(matchLevel),
		Level:    matchLevel,
		Radius:   def.Radius,
	}
	s.ecs.Healths[id] = component.NewHealth(def.ScaledHealth(matchLevel, matchLevel))
	s.ecs.Mortals[id] = &component.Mortal{Cause: component.CauseEnemy}
	if s.handles != nil {
		s.ecs.Renderables[id] = &component.Renderable{
			Color:     config.EnemyColor,
			Radius:    def.Visuals.Radius,
			HasStroke: true,
		}
	}
}
