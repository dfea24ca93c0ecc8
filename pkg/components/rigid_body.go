package components

import "github.com/decker502/spacejusticiar/pkg/orbital"

// RigidBodyComponent 简单刚体
// Force 每个物理步结束后清零（对应 AddForce 的持续力模式）
type RigidBodyComponent struct {
	Velocity orbital.Vec2
	Force    orbital.Vec2
	Mass     float64 // <= 0 视为 1
}
