// internal/system/utils.go
package system

import (
	"sort"

	"go-spell-arena/pkg/geom"

	"go-spell-arena/internal/component"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/types"
)

// sortedIDs возвращает ключи таблицы по возрастанию. Порядок обхода
// map в Go недетерминирован, а воспроизводимость симуляции при
// фиксированном зерне требует устойчивого порядка событий.
func sortedIDs[T any](table map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// synergyMultiplier — множитель урона по цели под контролем.
// Заморозка строго приоритетнее замедления.
func synergyMultiplier(ecs *entity.ECS, id types.EntityID) float64 {
	if _, ok := ecs.Frozens[id]; ok {
		return config.SynergyFrozenMultiplier
	}
	if _, ok := ecs.SlowEffects[id]; ok {
		return config.SynergySlowMultiplier
	}
	return 1.0
}

// applySlow накладывает замедление, перезаписывая существующее целиком.
func applySlow(ecs *entity.ECS, id types.EntityID, duration, factor float64) {
	ecs.SlowEffects[id] = &component.SlowEffect{Timer: duration, SlowFactor: factor}
}

// applyPoisonStack добавляет один стак яда или создает первый.
func applyPoisonStack(ecs *entity.ECS, id types.EntityID) {
	if p, ok := ecs.PoisonStacks[id]; ok {
		p.AddStack()
		return
	}
	ecs.PoisonStacks[id] = &component.PoisonStack{
		Stacks:         1,
		MaxStacks:      config.PoisonMaxStacks,
		DamagePerStack: config.PoisonDamagePerStack,
		TickTimer:      config.PoisonTickInterval,
		TickInterval:   config.PoisonTickInterval,
		TimeLeft:       config.PoisonDuration,
		Duration:       config.PoisonDuration,
	}
}

// applyBurn поджигает цель. Повторный поджог обновляет длительность,
// не меняя урон за тик и не сбрасывая таймер тика.
func applyBurn(ecs *entity.ECS, id types.EntityID, damagePerTick, duration, tickInterval float64) {
	if b, ok := ecs.Burns[id]; ok {
		b.Refresh(duration)
		return
	}
	ecs.Burns[id] = &component.Burn{
		TimeLeft:      duration,
		TickTimer:     tickInterval,
		TickInterval:  tickInterval,
		DamagePerTick: damagePerTick,
	}
}

// applyStun оглушает цель, запоминая ее скорость на момент оглушения.
func applyStun(ecs *entity.ECS, id types.EntityID, duration float64) {
	speed := 0.0
	if enemy, ok := ecs.Enemies[id]; ok {
		speed = enemy.Speed
	} else if player, ok := ecs.Players[id]; ok {
		speed = player.Speed
	}
	if s, ok := ecs.Stuns[id]; ok {
		s.TimeLeft = duration
		return
	}
	ecs.Stuns[id] = &component.Stun{TimeLeft: duration, OriginalSpeed: speed}
}

// applyConfusion сводит цель с ума. Повторное наложение обновляет
// длительность, сохраняя текущую цель замешательства.
func applyConfusion(ecs *entity.ECS, id types.EntityID, duration float64) {
	if c, ok := ecs.Confusions[id]; ok {
		c.Refresh(duration)
		return
	}
	ecs.Confusions[id] = &component.Confusion{
		TimeLeft:         duration,
		RetargetInterval: config.ConfusionRetargetInterval,
		SpeedFactor:      config.ConfusionSpeedFactor,
	}
}

// applyNeurotoxin накладывает дрожание движения. Повторное наложение
// обновляет длительность, не усиливая амплитуду.
func applyNeurotoxin(ecs *entity.ECS, id types.EntityID, duration float64) {
	if n, ok := ecs.Neurotoxins[id]; ok {
		n.Refresh(duration)
		return
	}
	ecs.Neurotoxins[id] = &component.Neurotoxin{
		TimeLeft:       duration,
		JitterAmount:   config.NeurotoxinJitter,
		JitterInterval: config.NeurotoxinJitterInterval,
	}
}

// applyFreezeStack добавляет стак заморозки. Уже замороженная цель
// без накопления новых стаков не получает: счет начинается заново
// после оттаивания.
func applyFreezeStack(ecs *entity.ECS, id types.EntityID) {
	if b, ok := ecs.FreezeBuildups[id]; ok {
		b.AddStack()
		return
	}
	if _, frozen := ecs.Frozens[id]; frozen {
		return
	}
	ecs.FreezeBuildups[id] = &component.FreezeBuildup{
		Stacks:        1,
		MaxStacks:     config.FreezeMaxStacks,
		DecayTimer:    config.FreezeDecayInterval,
		DecayInterval: config.FreezeDecayInterval,
	}
}

// playerID возвращает сущность игрока. В симуляции игрок один.
func playerID(ecs *entity.ECS) (types.EntityID, bool) {
	for _, id := range sortedIDs(ecs.Players) {
		return id, true
	}
	return 0, false
}

// nearestEnemy — ближайший враг к точке в пределах maxRange.
// Ноль во втором значении — врагов в радиусе нет.
func nearestEnemy(ecs *entity.ECS, from geom.Vec2, maxRange float64) (types.EntityID, bool) {
	var best types.EntityID
	found := false
	bestDist := maxRange
	for _, id := range sortedIDs(ecs.Enemies) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		dist := from.Distance(pos.Vec())
		if dist <= bestDist {
			// При равной дистанции побеждает меньший ID.
			if found && dist == bestDist && id > best {
				continue
			}
			best = id
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// closestEnemies возвращает до n ближайших к точке врагов,
// отсортированных по дистанции.
func closestEnemies(ecs *entity.ECS, from geom.Vec2, n int) []types.EntityID {
	type candidate struct {
		id   types.EntityID
		dist float64
	}
	candidates := make([]candidate, 0, len(ecs.Enemies))
	for _, id := range sortedIDs(ecs.Enemies) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{id: id, dist: from.DistanceSq(pos.Vec())})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]types.EntityID, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.id)
	}
	return out
}
