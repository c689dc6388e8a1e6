package config

// All distances are in pixels (y grows downward), all speeds in pixels per
// second and all durations in seconds.

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed      float64 `yaml:"move_speed"`
	SprintModifier float64 `yaml:"sprint_modifier"`
	JumpImpulseX   float64 `yaml:"jump_impulse_x"`
	JumpImpulseY   float64 `yaml:"jump_impulse_y"`
	HardFallSpeed  float64 `yaml:"hard_fall_speed"`
	Mass           float64 `yaml:"mass"`

	// Stats
	Health  float64 `yaml:"health"`
	Attack  float64 `yaml:"attack"`
	Magic   float64 `yaml:"magic"`
	Defense float64 `yaml:"defense"`
	Spirit  float64 `yaml:"spirit"`

	// Damage immunity after taking a hit
	MercyTime float64 `yaml:"mercy_time"`

	// Resources
	MaxAmmo       int     `yaml:"max_ammo"`
	TurkeyHeal    float64 `yaml:"turkey_heal"` // fraction of max health
	StartTurkeys  int     `yaml:"start_turkeys"`
	PoiseHits     int     `yaml:"poise_hits"`
	HurtboxReach  float64 `yaml:"hurtbox_reach"`
	DashIgnore    float64 `yaml:"dash_ignore"` // character pass-through window
	MissileForce  float64 `yaml:"missile_force"`
	DownwardForce float64 `yaml:"downward_force"` // double jump missile

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`

	Health  float64 `yaml:"health"`
	Attack  float64 `yaml:"attack"`
	Magic   float64 `yaml:"magic"`
	Defense float64 `yaml:"defense"`
	Spirit  float64 `yaml:"spirit"`

	PoiseHits    int     `yaml:"poise_hits"`
	HurtboxReach float64 `yaml:"hurtbox_reach"`

	// AI behavior constants
	DetectRange     float64 `yaml:"detect_range"`
	AttackRange     float64 `yaml:"attack_range"`
	BubbleDistance  float64 `yaml:"bubble_distance"`  // stop approaching inside this radius
	HeightThreshold float64 `yaml:"height_threshold"` // vertical gap that triggers jump/drop
	ClimbCooldown   float64 `yaml:"climb_cooldown"`   // between jumps/drops
	AttackDelay     float64 `yaml:"attack_delay"`     // used when a move has no cooldown
	JumpImpulseX    float64 `yaml:"jump_impulse_x"`
	JumpImpulseY    float64 `yaml:"jump_impulse_y"`
	Mass            float64 `yaml:"mass"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	StoicTime       float64 `yaml:"stoic_time"`
	InterruptDelay  float64 `yaml:"interrupt_delay"`
	ComboDropTime   float64 `yaml:"combo_drop_time"`
	DestructibleHP  float64 `yaml:"destructible_hp"`
	DefaultModifier float64 `yaml:"default_modifier"` // damage modifier when no move is set
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FixedStep    float64 `yaml:"fixed_step"`

	// Collision
	GroundProbe           float64 `yaml:"ground_probe"`
	PlatformDropThreshold float64 `yaml:"platform_drop_threshold"` // pixels above platform top to still land
	JumpSuppress          float64 `yaml:"jump_suppress"`
	DropThroughTime       float64 `yaml:"drop_through_time"`

	SpaceCellSize int `yaml:"space_cell_size"`
}

// ProjectileConfig contains projectile pool configuration
type ProjectileConfig struct {
	PoolSize     int     `yaml:"pool_size"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"` // applied upward from the owner's center
	Lifetime     float64 `yaml:"lifetime"`
	DetonateTime float64 `yaml:"detonate_time"`
	BlastRadius  float64 `yaml:"blast_radius"`
	EnemyForce   float64 `yaml:"enemy_force"`
}

// Config holds general simulation configuration
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TickRate  int     `yaml:"tick_rate"`
	DebugLogs bool    `yaml:"debug_logs"`
	TimeScale float64 `yaml:"time_scale"`
}

// Projectile pool types
const (
	ProjectileMissile = "missile"
	ProjectileKnife   = "knife"
)

// Timer purposes. Each is unique per owning entity.
const (
	TimerComboDrop      = "combo-drop"
	TimerGroundSuppress = "ground-suppress"
	TimerDropThrough    = "drop-through"
	TimerStoic          = "stoic"
	TimerInterrupt      = "interrupt-delay"
	TimerAttackCooldown = "attack-cooldown"
	TimerClimbCooldown  = "climb-cooldown"
	TimerMercy          = "mercy"
	TimerDashThrough    = "dash-through"
	TimerLifetime       = "lifetime"
	TimerDetonate       = "detonate"
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig

func init() {
	Reset()
}

// Reset restores every configuration block to its built-in defaults.
func Reset() {
	C = &Config{
		Width:     640,
		Height:    360,
		TickRate:  60,
		TimeScale: 1,
	}

	Physics = PhysicsConfig{
		Gravity:      1800,
		MaxFallSpeed: 900,
		FixedStep:    1.0 / 60.0,

		GroundProbe:           2,
		PlatformDropThreshold: 4,
		JumpSuppress:          0.1,
		DropThroughTime:       1,

		SpaceCellSize: 16,
	}

	Player = PlayerConfig{
		MoveSpeed:      180,
		SprintModifier: 1.4,
		JumpImpulseX:   0,
		JumpImpulseY:   -520,
		HardFallSpeed:  720,
		Mass:           1,

		Health:  100,
		Attack:  10,
		Magic:   10,
		Defense: 5,
		Spirit:  5,

		MercyTime: 1,

		MaxAmmo:       6,
		TurkeyHeal:    0.4,
		StartTurkeys:  0,
		PoiseHits:     0,
		HurtboxReach:  24,
		DashIgnore:    0.25,
		MissileForce:  420,
		DownwardForce: 300,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Enemy = EnemyConfig{
		MoveSpeed: 90,

		Health:  40,
		Attack:  8,
		Magic:   0,
		Defense: 2,
		Spirit:  0,

		PoiseHits:    3,
		HurtboxReach: 20,

		DetectRange:     160,
		AttackRange:     32,
		BubbleDistance:  24,
		HeightThreshold: 32,
		ClimbCooldown:   5,
		AttackDelay:     1,
		JumpImpulseX:    0,
		JumpImpulseY:    -480,
		Mass:            1,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Combat = CombatConfig{
		StoicTime:       2,
		InterruptDelay:  1,
		ComboDropTime:   2,
		DestructibleHP:  20,
		DefaultModifier: 1,
	}

	Projectile = ProjectileConfig{
		PoolSize:     8,
		Width:        6,
		Height:       6,
		SpawnOffsetY: 8,
		Lifetime:     1,
		DetonateTime: 0.3,
		BlastRadius:  32,
		EnemyForce:   240,
	}
}
