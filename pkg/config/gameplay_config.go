package config

import (
	"fmt"

	"github.com/decker502/spacejusticiar/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	Acceleration    float64 `yaml:"acceleration"`    // 推力加速度（单位/秒²）
	MaxVelocity     float64 `yaml:"maxVelocity"`     // 推进时的速度上限
	BoostScalar     float64 `yaml:"boostScalar"`     // 冲刺倍数
	BoostInterval   float64 `yaml:"boostInterval"`   // 冲刺冷却（秒）
	GravityScale    float64 `yaml:"gravityScale"`    // 行星参考系下的重力大小
	ColorChangeRate float64 `yaml:"colorChangeRate"` // 变色间隔（秒）
	MinColor        float64 `yaml:"minColor"`        // 随机颜色通道下限 0~1
	MaxColor        float64 `yaml:"maxColor"`        // 随机颜色通道上限 0~1
	SlowMotionScale float64 `yaml:"slowMotionScale"` // 慢动作时间倍率
	EnergyDrainRate float64 `yaml:"energyDrainRate"` // 慢动作每秒消耗能量
	Radius          float64 `yaml:"radius"`          // 碰撞半径
	DeathDelay      float64 `yaml:"deathDelay"`      // 生命归零到销毁的延迟（秒）
}

// CellConfig 生命/能量/完整度配置
type CellConfig struct {
	Max       float64 `yaml:"max"`
	RegenRate float64 `yaml:"regenRate"` // 每秒回复量
}

// CameraConfig 镜头参数
type CameraConfig struct {
	AlignSpeed        float64 `yaml:"alignSpeed"`        // 对齐初始插值速度
	AlignThresholdDeg float64 `yaml:"alignThresholdDeg"` // 对齐收敛阈值（度）
	Zoom              float64 `yaml:"zoom"`              // 每世界单位像素数
}

// CombatConfig 战斗参数
type CombatConfig struct {
	ProjectileSpeed    float64 `yaml:"projectileSpeed"`
	ProjectileLifetime float64 `yaml:"projectileLifetime"`
	ProjectileRadius   float64 `yaml:"projectileRadius"`
	FireInterval       float64 `yaml:"fireInterval"` // 玩家射击间隔（秒）

	// ProjectileDamage 子弹命中目标（玩家或鱼雷）时的伤害
	ProjectileDamage float64 `yaml:"projectileDamage"`
	// PlanetProjectileDamage 子弹击中行星时的完整度损失
	PlanetProjectileDamage float64 `yaml:"planetProjectileDamage"`
	// PlanetTorpedoDamage 鱼雷击中行星时的完整度损失
	PlanetTorpedoDamage float64 `yaml:"planetTorpedoDamage"`
	// PlayerTorpedoDamage 鱼雷撞上玩家时的伤害
	PlayerTorpedoDamage float64 `yaml:"playerTorpedoDamage"`

	TorpedoSpeed   float64 `yaml:"torpedoSpeed"`
	TorpedoHealth  float64 `yaml:"torpedoHealth"`
	TorpedoRadius  float64 `yaml:"torpedoRadius"`
	LauncherPeriod float64 `yaml:"launcherPeriod"` // 鱼雷发射间隔（秒）
	// LauncherDistance 鱼雷出生点到 home 行星中心的距离（行星半径的倍数）
	LauncherDistance float64 `yaml:"launcherDistance"`
	EnemyFireChance  float64 `yaml:"enemyFireChance"` // 每次发射时额外向玩家射击的概率
	ExplosionPool    int     `yaml:"explosionPool"`   // 爆炸特效对象池容量
}

// GameplayConfig 玩法参数
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	Player          PlayerConfig `yaml:"player"`
	Health          CellConfig   `yaml:"health"`
	Energy          CellConfig   `yaml:"energy"`
	PlanetIntegrity CellConfig   `yaml:"planetIntegrity"`
	Camera          CameraConfig `yaml:"camera"`
	Combat          CombatConfig `yaml:"combat"`
}

// DefaultGameplayConfig 返回默认玩法参数
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerConfig{
			Acceleration:    1,
			MaxVelocity:     10,
			BoostScalar:     40,
			BoostInterval:   2,
			GravityScale:    1,
			ColorChangeRate: 0.5,
			MinColor:        0.5,
			MaxColor:        1,
			SlowMotionScale: 0.5,
			EnergyDrainRate: 0.3,
			Radius:          0.25,
			DeathDelay:      0.1,
		},
		Health:          CellConfig{Max: 1, RegenRate: 0.04},
		Energy:          CellConfig{Max: 1, RegenRate: 0.05},
		PlanetIntegrity: CellConfig{Max: 1, RegenRate: 0},
		Camera: CameraConfig{
			AlignSpeed:        6,
			AlignThresholdDeg: 1,
			Zoom:              40,
		},
		Combat: CombatConfig{
			ProjectileSpeed:        20,
			ProjectileLifetime:     2,
			ProjectileRadius:       0.08,
			FireInterval:           0.25,
			ProjectileDamage:       0.2,
			PlanetProjectileDamage: 0.001,
			PlanetTorpedoDamage:    0.01,
			PlayerTorpedoDamage:    0.2,
			TorpedoSpeed:           7,
			TorpedoHealth:          0.1,
			TorpedoRadius:          0.2,
			LauncherPeriod:         3,
			LauncherDistance:       3,
			EnemyFireChance:        0.3,
			ExplosionPool:          16,
		},
	}
}

// LoadGameplayConfig 加载玩法参数
// 文件中缺省的字段保留默认值
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 从 YAML 数据解析玩法参数（在默认值之上覆盖）
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	p := c.Player
	if p.Acceleration <= 0 {
		return fmt.Errorf("player.acceleration must be > 0, got %.3f", p.Acceleration)
	}
	if p.MaxVelocity <= 0 {
		return fmt.Errorf("player.maxVelocity must be > 0, got %.3f", p.MaxVelocity)
	}
	if p.BoostScalar < 1 {
		return fmt.Errorf("player.boostScalar must be >= 1, got %.3f", p.BoostScalar)
	}
	if p.BoostInterval < 0 {
		return fmt.Errorf("player.boostInterval must be >= 0, got %.3f", p.BoostInterval)
	}
	if p.MinColor < 0 || p.MaxColor > 1 || p.MinColor > p.MaxColor {
		return fmt.Errorf("player color range invalid: min(%.2f) max(%.2f)", p.MinColor, p.MaxColor)
	}
	if p.SlowMotionScale <= 0 || p.SlowMotionScale > 1 {
		return fmt.Errorf("player.slowMotionScale must be in (0, 1], got %.3f", p.SlowMotionScale)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("player.radius must be > 0, got %.3f", p.Radius)
	}

	for name, cell := range map[string]CellConfig{
		"health":          c.Health,
		"energy":          c.Energy,
		"planetIntegrity": c.PlanetIntegrity,
	} {
		if cell.Max <= 0 {
			return fmt.Errorf("%s.max must be > 0, got %.3f", name, cell.Max)
		}
		if cell.RegenRate < 0 {
			return fmt.Errorf("%s.regenRate must be >= 0, got %.3f", name, cell.RegenRate)
		}
	}

	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("camera.zoom must be > 0, got %.3f", c.Camera.Zoom)
	}
	if c.Camera.AlignSpeed <= 0 {
		return fmt.Errorf("camera.alignSpeed must be > 0, got %.3f", c.Camera.AlignSpeed)
	}
	if c.Camera.AlignThresholdDeg <= 0 {
		return fmt.Errorf("camera.alignThresholdDeg must be > 0, got %.3f", c.Camera.AlignThresholdDeg)
	}

	cb := c.Combat
	if cb.ProjectileSpeed <= 0 || cb.ProjectileLifetime <= 0 || cb.ProjectileRadius <= 0 {
		return fmt.Errorf("combat projectile speed/lifetime/radius must be > 0")
	}
	if cb.TorpedoSpeed <= 0 || cb.TorpedoRadius <= 0 {
		return fmt.Errorf("combat torpedo speed/radius must be > 0")
	}
	if cb.LauncherPeriod <= 0 {
		return fmt.Errorf("combat.launcherPeriod must be > 0, got %.3f", cb.LauncherPeriod)
	}
	if cb.LauncherDistance <= InfluenceScale {
		return fmt.Errorf("combat.launcherDistance must be > %.1f (outside the influence zone), got %.3f", InfluenceScale, cb.LauncherDistance)
	}
	if cb.EnemyFireChance < 0 || cb.EnemyFireChance > 1 {
		return fmt.Errorf("combat.enemyFireChance must be in [0, 1], got %.3f", cb.EnemyFireChance)
	}
	if cb.ExplosionPool <= 0 {
		return fmt.Errorf("combat.explosionPool must be > 0, got %d", cb.ExplosionPool)
	}

	return nil
}
