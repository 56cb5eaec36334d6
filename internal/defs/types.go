// internal/defs/types.go
package defs

// Archetype defines the behavior family of a spell.
type Archetype string

const (
	// ArchetypeBurst — расширяющаяся волна от точки каста.
	ArchetypeBurst Archetype = "BURST"
	// ArchetypeVortex — стационарная воронка с притяжением и тиком урона.
	ArchetypeVortex Archetype = "VORTEX"
	// ArchetypeZone — область периодического урона, возможно с каплями.
	ArchetypeZone Archetype = "ZONE"
	// ArchetypeArc — дуговой снаряд с осколками при взрыве.
	ArchetypeArc Archetype = "ARC"
	// ArchetypeCone — короткоживущий сектор перед кастером.
	ArchetypeCone Archetype = "CONE"
	// ArchetypeTurret — стационарная турель, бьющая ближайшего врага.
	ArchetypeTurret Archetype = "TURRET"
	// ArchetypeWraith — бафф неосязаемости на кастере.
	ArchetypeWraith Archetype = "WRAITH"
	// ArchetypeVirulence — прямой удар ядом, оставляющий заразную метку.
	ArchetypeVirulence Archetype = "VIRULENCE"
	// ArchetypeBolt — прямолинейный снаряд.
	ArchetypeBolt Archetype = "BOLT"
	// ArchetypeBurn — поджог цели: периодический урон вместо мгновенного.
	ArchetypeBurn Archetype = "BURN"
)

// BurstEffect — дополнительный статус, накладываемый волной.
type BurstEffect string

const (
	BurstEffectNone    BurstEffect = ""
	BurstEffectStun    BurstEffect = "STUN"
	BurstEffectConfuse BurstEffect = "CONFUSE"
	BurstEffectJitter  BurstEffect = "JITTER"
)

// Visuals describes how an entity looks when assets are available.
type Visuals struct {
	Radius float64 `json:"radius"`
}

// BurstParams — параметры расширяющейся волны.
type BurstParams struct {
	Radius   float64 `json:"radius"`
	Duration float64 `json:"duration"` // 0 — мгновенная вспышка на полный радиус.
	// Накладываемый статус и его длительность. Волна со статусом STUN
	// или CONFUSE урона не наносит.
	Effect     BurstEffect `json:"effect,omitempty"`
	EffectTime float64     `json:"effect_time,omitempty"`
}

// VortexParams — параметры воронки.
type VortexParams struct {
	PullRadius    float64 `json:"pull_radius"`
	PullStrength  float64 `json:"pull_strength"` // Скорость притяжения, единиц в секунду.
	DamageRate    float64 `json:"damage_rate"`   // Урон в секунду, наносится тиками.
	TickInterval  float64 `json:"tick_interval"`
	Duration      float64 `json:"duration"`
	RotationSpeed float64 `json:"rotation_speed"`
}

// ZoneParams — параметры области. SpawnInterval > 0 переключает зону
// в режим падающих капель вместо прямого урона по тику.
type ZoneParams struct {
	Radius       float64 `json:"radius"`
	Duration     float64 `json:"duration"`
	TickInterval float64 `json:"tick_interval"`
	DamageRatio  float64 `json:"damage_ratio"` // Доля урона заклинания за тик.
	PlaceAhead   float64 `json:"place_ahead"`  // Смещение от кастера по направлению прицела.

	SpawnInterval float64 `json:"spawn_interval,omitempty"`
	DropHeight    float64 `json:"drop_height,omitempty"`
	FallSpeed     float64 `json:"fall_speed,omitempty"`
	HeightBand    float64 `json:"height_band,omitempty"`
	DropContact   float64 `json:"drop_contact,omitempty"`
	DropPoison    bool    `json:"drop_poison,omitempty"` // Капля добавляет стак яда.
}

// ArcParams — параметры дугового снаряда.
type ArcParams struct {
	Speed          float64 `json:"speed"`
	PeakHeight     float64 `json:"peak_height"`
	ContactRange   float64 `json:"contact_range"`
	FragmentsMin   int     `json:"fragments_min"`
	FragmentsMax   int     `json:"fragments_max"`
	FragmentSpeed  float64 `json:"fragment_speed"`
	FragmentLife   float64 `json:"fragment_life"`
	FragmentRatio  float64 `json:"fragment_ratio"` // Доля урона заклинания на осколок.
	FragmentRange  float64 `json:"fragment_range"`
}

// ConeParams — параметры сектора.
type ConeParams struct {
	FullAngle   float64 `json:"full_angle"` // Полный угол раскрытия в градусах.
	Range       float64 `json:"range"`
	Lifetime    float64 `json:"lifetime"`
	ApplyPoison bool    `json:"apply_poison"`
}

// TurretParams — параметры турели.
type TurretParams struct {
	Range        float64 `json:"range"`
	ZapInterval  float64 `json:"zap_interval"`
	Duration     float64 `json:"duration"`
	SlowDuration float64 `json:"slow_duration"`
	SlowFactor   float64 `json:"slow_factor"`
}

// WraithParams — параметры баффа неосязаемости.
type WraithParams struct {
	Duration     float64 `json:"duration"`
	ContactRange float64 `json:"contact_range"`
}

// VirulenceParams — параметры заразной метки.
type VirulenceParams struct {
	SpreadRadius  float64 `json:"spread_radius"`
	Falloff       float64 `json:"falloff"`
	MaxChainDepth int     `json:"max_chain_depth"`
}

// BoltParams — параметры прямолинейного снаряда.
type BoltParams struct {
	Speed        float64 `json:"speed"`
	Lifetime     float64 `json:"lifetime"`
	ContactRange float64 `json:"contact_range"`
	// Урон x3 по замороженным, x2 по замедленным целям.
	Synergy bool `json:"synergy,omitempty"`
	// При попадании снаряд разрывается волной этого радиуса.
	ExplodeRadius   float64 `json:"explode_radius,omitempty"`
	ExplodeDuration float64 `json:"explode_duration,omitempty"`
}

// BurnParams — параметры поджога.
type BurnParams struct {
	Duration     float64 `json:"duration"`
	TickInterval float64 `json:"tick_interval"`
}
