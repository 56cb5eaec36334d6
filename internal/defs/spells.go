// internal/defs/spells.go
package defs

import "go-spell-arena/internal/config"

// SpellDefinition holds all the static data for a specific spell.
// Ровно одно из полей параметров заполнено, в соответствии с архетипом.
type SpellDefinition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Element    string    `json:"element"`
	Archetype  Archetype `json:"archetype"`
	BaseDamage float64   `json:"base_damage"`
	FireRate   float64   `json:"fire_rate"` // Кастов в секунду на первом уровне.

	Burst     *BurstParams     `json:"burst,omitempty"`
	Vortex    *VortexParams    `json:"vortex,omitempty"`
	Zone      *ZoneParams      `json:"zone,omitempty"`
	Arc       *ArcParams       `json:"arc,omitempty"`
	Cone      *ConeParams      `json:"cone,omitempty"`
	Turret    *TurretParams    `json:"turret,omitempty"`
	Wraith    *WraithParams    `json:"wraith,omitempty"`
	Virulence *VirulenceParams `json:"virulence,omitempty"`
	Bolt      *BoltParams      `json:"bolt,omitempty"`
	Burn      *BurnParams      `json:"burn,omitempty"`
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > config.SpellMaxLevel {
		return config.SpellMaxLevel
	}
	return level
}

// Damage возвращает урон заклинания на указанном уровне.
func (d *SpellDefinition) Damage(level int) float64 {
	return d.BaseDamage * float64(clampLevel(level)) * config.SpellDamagePerLevel
}

// EffectiveFireRate — кастов в секунду с учетом уровня. К максимальному
// уровню перезарядка сокращается вдвое.
func (d *SpellDefinition) EffectiveFireRate(level int) float64 {
	l := float64(clampLevel(level) - 1)
	return d.FireRate * (1.0 - l*config.SpellCooldownScaling/float64(config.SpellMaxLevel-1))
}

// Cooldown — секунд между кастами на указанном уровне.
func (d *SpellDefinition) Cooldown(level int) float64 {
	return 1.0 / d.EffectiveFireRate(level)
}

// SpellLibrary is a map to hold all spell definitions, keyed by their ID.
var SpellLibrary = defaultSpellLibrary()

func defaultSpellLibrary() map[string]SpellDefinition {
	spells := []SpellDefinition{
		{
			ID: "SPELL_NOVA", Name: "Nova", Element: "Fire",
			Archetype: ArchetypeBurst, BaseDamage: 18.0, FireRate: 1.0,
			Burst: &BurstParams{Radius: 8.0, Duration: 0.4},
		},
		{
			ID: "SPELL_IMMOLATE", Name: "Immolate", Element: "Fire",
			Archetype: ArchetypeBurn, BaseDamage: 12.0, FireRate: 2.5,
			Burn: &BurnParams{Duration: 4.0, TickInterval: 0.5},
		},
		{
			ID: "SPELL_FLAME_ARC", Name: "Flame Arc", Element: "Fire",
			Archetype: ArchetypeArc, BaseDamage: 25.0, FireRate: 1.5,
			Arc: &ArcParams{
				Speed: 15.0, PeakHeight: 5.0, ContactRange: 1.0,
				FragmentsMin: 4, FragmentsMax: 6, FragmentSpeed: 12.0,
				FragmentLife: 0.8, FragmentRatio: 0.35, FragmentRange: 0.5,
			},
		},
		{
			ID: "SPELL_SHATTER", Name: "Shatter", Element: "Frost",
			Archetype: ArchetypeBolt, BaseDamage: 40.0, FireRate: 0.6,
			Bolt: &BoltParams{Speed: 30.0, Lifetime: 4.0, ContactRange: 1.2, Synergy: true},
		},
		{
			ID: "SPELL_VENOM_SPRAY", Name: "Venom Spray", Element: "Poison",
			Archetype: ArchetypeCone, BaseDamage: 14.0, FireRate: 1.5,
			Cone: &ConeParams{FullAngle: 60.0, Range: 6.0, Lifetime: 0.3, ApplyPoison: true},
		},
		{
			ID: "SPELL_BLIGHT", Name: "Blight", Element: "Poison",
			Archetype: ArchetypeZone, BaseDamage: 16.0, FireRate: 1.0,
			Zone: &ZoneParams{Radius: 4.0, Duration: 5.0, TickInterval: 0.5, DamageRatio: 0.15},
		},
		{
			ID: "SPELL_ACID_RAIN", Name: "Acid Rain", Element: "Poison",
			Archetype: ArchetypeZone, BaseDamage: 12.0, FireRate: 0.5,
			Zone: &ZoneParams{
				Radius: 4.5, Duration: 5.0, TickInterval: 0.5, DamageRatio: 0.15,
				PlaceAhead: 6.0, SpawnInterval: 0.12, DropHeight: 6.0,
				FallSpeed: 10.0, HeightBand: 0.75, DropContact: 1.0, DropPoison: true,
			},
		},
		{
			ID: "SPELL_PANDEMIC", Name: "Pandemic", Element: "Poison",
			Archetype: ArchetypeVirulence, BaseDamage: 10.0, FireRate: 0.6,
			Virulence: &VirulenceParams{SpreadRadius: 100.0, Falloff: 0.7, MaxChainDepth: 3},
		},
		{
			ID: "SPELL_STATIC_ORB", Name: "Static Orb", Element: "Lightning",
			Archetype: ArchetypeTurret, BaseDamage: 10.0, FireRate: 0.5,
			Turret: &TurretParams{
				Range: 8.0, ZapInterval: 0.5, Duration: 5.0,
				SlowDuration: 1.5, SlowFactor: 0.6,
			},
		},
		{
			ID: "SPELL_STUN_WAVE", Name: "Stun Wave", Element: "Psychic",
			Archetype: ArchetypeBurst, BaseDamage: 12.0, FireRate: 2.0,
			Burst: &BurstParams{Radius: 8.0, Duration: 0.4, Effect: BurstEffectStun, EffectTime: 2.0},
		},
		{
			ID: "SPELL_SCREAM", Name: "Scream", Element: "Psychic",
			Archetype: ArchetypeBurst, BaseDamage: 35.0, FireRate: 0.3,
			Burst: &BurstParams{Radius: 12.0, Duration: 0.4, Effect: BurstEffectJitter, EffectTime: 3.0},
		},
		{
			ID: "SPELL_PANIC_WAVE", Name: "Panic Wave", Element: "Chaos",
			Archetype: ArchetypeBurst, BaseDamage: 28.0, FireRate: 0.5,
			Burst: &BurstParams{Radius: 7.0, Effect: BurstEffectConfuse, EffectTime: 4.0},
		},
		{
			ID: "SPELL_VOID_SPIRAL", Name: "Void Spiral", Element: "Dark",
			Archetype: ArchetypeVortex, BaseDamage: 25.0, FireRate: 0.4,
			Vortex: &VortexParams{
				PullRadius: 6.0, PullStrength: 120.0, DamageRate: 15.0,
				TickInterval: 0.25, Duration: 5.0, RotationSpeed: 3.0,
			},
		},
		{
			ID: "SPELL_WRAITH_FORM", Name: "Wraith Form", Element: "Dark",
			Archetype: ArchetypeWraith, BaseDamage: 12.0, FireRate: 0.5,
			Wraith: &WraithParams{Duration: 3.0, ContactRange: 1.5},
		},
		{
			ID: "SPELL_SOLAR_FLARE", Name: "Solar Flare", Element: "Light",
			Archetype: ArchetypeBolt, BaseDamage: 28.0, FireRate: 0.6,
			Bolt: &BoltParams{
				Speed: 18.0, Lifetime: 0.85, ContactRange: 1.0,
				ExplodeRadius: 4.0, ExplodeDuration: 0.3,
			},
		},
	}

	lib := make(map[string]SpellDefinition, len(spells))
	for _, def := range spells {
		lib[def.ID] = def
	}
	return lib
}
