package components

import (
	"image/color"

	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// CelestialBodyComponent 天体（恒星、行星、卫星）
type CelestialBodyComponent struct {
	Name string
	Kind config.BodyKind

	// Scale 表面半径（世界单位）
	Scale float64
	// InfluenceRadius 影响区半径，进入后玩家切换到该天体的参考系
	InfluenceRadius float64

	RotationSpeed float64 // 自转速度（度/秒）
	RotateBody    bool

	Color      color.RGBA
	Atmosphere color.RGBA

	// Home 需要保护的行星，完整度归零即游戏结束
	Home bool

	// Displacement 本 tick 轨道位移，用于带动处于影响区内的玩家
	Displacement orbital.Vec2
}
