// internal/config/settings.go
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings — параметры запуска, читаемые из окружения. Файл .env
// подхватывается, если присутствует; его отсутствие не ошибка.
type Settings struct {
	Seed          int64   `env:"ARENA_SEED" envDefault:"0"` // 0 — взять из текущего времени.
	Headless      bool    `env:"ARENA_HEADLESS" envDefault:"false"`
	HeadlessSteps int     `env:"ARENA_HEADLESS_STEPS" envDefault:"3600"`
	StepSeconds   float64 `env:"ARENA_STEP_SECONDS" envDefault:"0.0166667"`

	// Список ID заклинаний через запятую и их общий уровень.
	Loadout    string `env:"ARENA_LOADOUT" envDefault:"SPELL_NOVA,SPELL_VENOM_SPRAY,SPELL_STATIC_ORB"`
	SpellLevel int    `env:"ARENA_SPELL_LEVEL" envDefault:"1"`

	// Каталог с JSON-переопределениями библиотек определений.
	DefsDir string `env:"ARENA_DEFS_DIR" envDefault:""`

	Telemetry bool `env:"ARENA_TELEMETRY" envDefault:"false"`
	Audio     bool `env:"ARENA_AUDIO" envDefault:"false"`
}

// LoadSettings читает .env (если есть) и разбирает окружение.
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.StepSeconds <= 0 || s.StepSeconds > MaxDeltaTime {
		return nil, fmt.Errorf("step seconds %v outside (0, %v]", s.StepSeconds, MaxDeltaTime)
	}
	if s.SpellLevel < 1 || s.SpellLevel > SpellMaxLevel {
		return nil, fmt.Errorf("spell level %d outside [1, %d]", s.SpellLevel, SpellMaxLevel)
	}
	return s, nil
}

// LoadoutIDs — ID заклинаний из строки загрузки, без пустых элементов.
func (s *Settings) LoadoutIDs() []string {
	parts := strings.Split(s.Loadout, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
