package orbital

import "math"

// FrameOfReference 参考系类型
type FrameOfReference int

const (
	// FrameGlobal 全局参考系："上"是固定的世界轴
	FrameGlobal FrameOfReference = iota
	// FramePlanet 行星参考系："上"是行星表面法线
	FramePlanet
)

// String 返回参考系名称（用于 HUD 和日志）
func (f FrameOfReference) String() string {
	switch f {
	case FrameGlobal:
		return "GLOBAL"
	case FramePlanet:
		return "PLANET"
	default:
		return "UNKNOWN"
	}
}

// GlobalUp 全局参考系下的"上"方向
var GlobalUp = Vec2{X: 0, Y: 1}

// Up 计算玩家所在参考系的"上"方向
//
// PLANET: normalize(playerPos - referencePos)，两点重合时返回零向量
// GLOBAL: GlobalUp
func Up(frame FrameOfReference, playerPos, referencePos Vec2) Vec2 {
	if frame == FramePlanet {
		return playerPos.Sub(referencePos).Normalized()
	}
	return GlobalUp
}

// Right 返回与 up 垂直、指向右侧的方向 (up.y, -up.x)
func Right(up Vec2) Vec2 {
	return Vec2{X: up.Y, Y: -up.X}
}

// AlignmentAngle 返回使镜头"上"方向与 up 一致的镜头旋转角（弧度，逆时针为正）
// 零向量返回 0
func AlignmentAngle(up Vec2) float64 {
	if up.IsZero() {
		return 0
	}
	return math.Atan2(-up.X, up.Y)
}

// CameraUp 返回镜头旋转 roll 弧度后的"上"方向
func CameraUp(roll float64) Vec2 {
	return GlobalUp.Rotate(roll)
}

// ShortestArc 返回从 from 转到 to 的最短有符号角差（弧度，(-π, π]）
func ShortestArc(from, to float64) float64 {
	d := math.Mod(to-from, TwoPi)
	if d > math.Pi {
		d -= TwoPi
	} else if d <= -math.Pi {
		d += TwoPi
	}
	return d
}
