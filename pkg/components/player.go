package components

import (
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// PlayerComponent 玩家飞船状态
type PlayerComponent struct {
	// Frame 当前参考系
	Frame orbital.FrameOfReference
	// Planet 当前所在影响区的天体，不在任何影响区时为 ecs.InvalidEntity
	Planet ecs.EntityID

	InSlowMotion bool

	// PrevPosition 上一次镜头对齐时的位置（位置未变化时不重新对齐）
	PrevPosition orbital.Vec2

	// ThrustDir 本帧推力方向（单位向量或零）
	ThrustDir orbital.Vec2
	// LastThrustDir 上一次设置尾焰方向时的推力方向
	LastThrustDir orbital.Vec2

	BoostCooldown CooldownTimer
	FireCooldown  CooldownTimer

	// ColorTimer 距离上次变色的时间（秒）
	ColorTimer float64

	// Dead 生命归零，等待销毁
	Dead bool
}
