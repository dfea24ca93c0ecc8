package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/spacejusticiar/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// BodyKind 天体类型
type BodyKind string

const (
	BodyStar   BodyKind = "star"
	BodyPlanet BodyKind = "planet"
	BodyMoon   BodyKind = "moon"
)

// InfluenceScale 影响区半径 = 天体尺寸 × 1.5
const InfluenceScale = 1.5

// BodyConfig 单个天体的配置
type BodyConfig struct {
	Name   string   `yaml:"name"`
	Kind   BodyKind `yaml:"kind"`
	Parent string   `yaml:"parent"` // 轨道父天体名称，恒星为空

	// Scale 天体半径（世界单位），影响区半径为 Scale*1.5
	Scale float64 `yaml:"scale"`

	OrbitRadius   float64 `yaml:"orbitRadius"`   // 轨道半径
	OrbitSpeed    float64 `yaml:"orbitSpeed"`    // 轨道角速度（弧度/秒）
	OrbitAngle    float64 `yaml:"orbitAngle"`    // 初始轨道角（弧度）
	RotationSpeed float64 `yaml:"rotationSpeed"` // 自转速度（度/秒）

	Color      string `yaml:"color"`      // 十六进制颜色，如 "#3a7bd5"
	Atmosphere string `yaml:"atmosphere"` // 大气/光晕颜色，可为空

	// Home 玩家出生并需要保护的行星
	Home bool `yaml:"home"`
}

// StarSystemConfig 星系配置
//
// 配置文件位置: data/star_system.yaml
type StarSystemConfig struct {
	Name   string       `yaml:"name"`
	Bodies []BodyConfig `yaml:"bodies"`
}

// LoadStarSystemConfig 加载星系配置
//
// 参数:
//   - path: 配置文件路径（如 "data/star_system.yaml"）
//
// 返回:
//   - *StarSystemConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadStarSystemConfig(path string) (*StarSystemConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read star system config: %w", err)
	}
	return ParseStarSystemConfig(data)
}

// ParseStarSystemConfig 从 YAML 数据解析星系配置
func ParseStarSystemConfig(data []byte) (*StarSystemConfig, error) {
	var cfg StarSystemConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse star system config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid star system config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 规则：
//   - 名称唯一且非空
//   - 恰好一个没有父天体的恒星（轨道树的根）
//   - 父天体必须在子天体之前声明（保证按顺序推进轨道时父位置已更新）
//   - 尺寸为正，轨道半径非负
//   - 恰好一个 home 行星
//   - 颜色可解析
func (c *StarSystemConfig) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("no bodies defined")
	}

	seen := make(map[string]bool, len(c.Bodies))
	roots := 0
	homes := 0

	for i, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("body #%d has no name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate body name '%s'", b.Name)
		}

		switch b.Kind {
		case BodyStar, BodyPlanet, BodyMoon:
		default:
			return fmt.Errorf("body '%s' has unknown kind '%s'", b.Name, b.Kind)
		}

		if b.Scale <= 0 {
			return fmt.Errorf("body '%s' scale must be > 0, got %.2f", b.Name, b.Scale)
		}
		if b.OrbitRadius < 0 {
			return fmt.Errorf("body '%s' orbitRadius must be >= 0, got %.2f", b.Name, b.OrbitRadius)
		}

		if b.Parent == "" {
			if b.Kind != BodyStar {
				return fmt.Errorf("body '%s' has no parent but is not a star", b.Name)
			}
			roots++
		} else if !seen[b.Parent] {
			return fmt.Errorf("body '%s' references parent '%s' which is not declared before it", b.Name, b.Parent)
		}

		if b.Home {
			if b.Kind == BodyStar {
				return fmt.Errorf("home body '%s' cannot be a star", b.Name)
			}
			homes++
		}

		if _, err := ParseHexColor(b.Color); err != nil {
			return fmt.Errorf("body '%s' color: %w", b.Name, err)
		}
		if b.Atmosphere != "" {
			if _, err := ParseHexColor(b.Atmosphere); err != nil {
				return fmt.Errorf("body '%s' atmosphere: %w", b.Name, err)
			}
		}

		seen[b.Name] = true
	}

	if roots != 1 {
		return fmt.Errorf("expected exactly one root star, got %d", roots)
	}
	if homes != 1 {
		return fmt.Errorf("expected exactly one home body, got %d", homes)
	}

	return nil
}

// HomeBody 返回 home 行星配置
func (c *StarSystemConfig) HomeBody() *BodyConfig {
	for i := range c.Bodies {
		if c.Bodies[i].Home {
			return &c.Bodies[i]
		}
	}
	return nil
}

// InfluenceRadius 影响区半径
func (b *BodyConfig) InfluenceRadius() float64 {
	return b.Scale * InfluenceScale
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
