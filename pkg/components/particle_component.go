package components

import (
	"image/color"

	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// ParticleEmitterComponent 粒子发射器（飞船尾焰）
//
// Direction 为推力方向，粒子向相反方向喷出。
type ParticleEmitterComponent struct {
	Playing     bool
	Direction   orbital.Vec2
	Rate        float64 // 每秒粒子数
	Speed       float64
	Spread      float64 // 散布角（弧度）
	Lifetime    float64
	Size        float64
	Color       color.RGBA
	Accumulator float64
}

// ParticleComponent 单个粒子
// 位置由 TransformComponent 管理
type ParticleComponent struct {
	Velocity orbital.Vec2
	Age      float64
	Lifetime float64
	Size     float64
	Color    color.RGBA
}

// ExplosionComponent 爆炸特效（对象池复用）
type ExplosionComponent struct {
	Active    bool
	Age       float64
	Duration  float64
	MaxRadius float64
	Color     color.RGBA
}
