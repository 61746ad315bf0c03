// internal/config/config.go
package config

import "image/color"

const (
	TileSize     = 50.0
	PlayfieldW   = 16 * TileSize // 800
	PlayfieldH   = 12 * TileSize // 600
	PanelWidth   = 200
	ScreenWidth  = int(PlayfieldW) + PanelWidth
	ScreenHeight = int(PlayfieldH)

	TickRate     = 60.0
	FixedStep    = 1.0 / TickRate
	MaxFrameTime = 0.25 // защита от "спирали смерти"

	StartingHealth = 100
	StartingMoney  = 200
	LeakDamage     = 10

	// Wave formula: count = base + per*N, и т.д.
	WaveBaseCount     = 5
	WaveCountPerWave  = 2
	WaveBaseHealth    = 80
	WaveHealthPerWave = 20
	WaveBaseSpeed     = 60.0
	WaveSpeedPerWave  = 5.0
	EnemySpacing      = TileSize * 0.7

	// Wave completion payout.
	WaveBonusBase    = 100
	WaveBonusPerWave = 10
	InterestPercent  = 5

	SellRefundPercent = 75

	EnemyHalfSize      = TileSize / 2
	ProjectileHalfSize = 3.0

	DeathEffectRadius = 20.0
	DeathEffectLife   = 0.4
	SmokeRadius       = 4.0
	SmokeLife         = 0.2
	ExplosionLife     = 0.3
	LaserSparkRadius  = 5.0
	LaserSparkLife    = 0.05
	AuraPulseLife     = 0.1
	AuraPulsePeriod   = 0.2 // seconds per radian of the aura pulse
)

// SpeedMultipliers is the cycle of simulation speeds per rendered frame.
var SpeedMultipliers = []int{1, 2, 4}

var (
	BackgroundColor = color.RGBA{50, 50, 50, 255}
	PathColor       = color.RGBA{139, 119, 101, 255}
	SpotColor       = color.RGBA{90, 90, 90, 255}
	SpotHoverColor  = color.RGBA{120, 160, 120, 255}
	PanelColor      = color.RGBA{30, 30, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarBack   = color.RGBA{120, 0, 0, 255}
	HealthBarFront  = color.RGBA{0, 200, 0, 255}
	SlowTintColor   = color.RGBA{0, 200, 255, 120}
	ShadowColor     = color.RGBA{0, 0, 0, 80}
	SelectionColor  = color.RGBA{255, 255, 255, 80}

	ColorGold   = color.RGBA{255, 215, 0, 255}
	ColorSmoke  = color.RGBA{128, 128, 128, 150}
	ColorOrange = color.RGBA{255, 165, 0, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorAura   = color.RGBA{255, 255, 100, 50}
)
