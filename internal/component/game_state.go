// internal/component/game_state.go
package component

// MatchStats — счет и прогресс текущего матча. Уровень матча растет
// с убийствами и подтягивает характеристики новых врагов.
type MatchStats struct {
	Score           int
	Kills           int
	MatchLevel      int
	KillsThisLevel  int
	KillsPerLevel   int
	SurvivalTime    float64
}

// RegisterKill засчитывает убийство и возвращает true, если уровень
// матча вырос.
func (m *MatchStats) RegisterKill() bool {
	m.Kills++
	m.Score++
	m.KillsThisLevel++
	if m.KillsPerLevel > 0 && m.KillsThisLevel >= m.KillsPerLevel {
		m.KillsThisLevel = 0
		m.MatchLevel++
		return true
	}
	return false
}
