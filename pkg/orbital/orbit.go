package orbital

import "math"

// TwoPi 一整圈的弧度
const TwoPi = 2 * math.Pi

// OrbitState 绕父天体做圆周运动的轨道状态
type OrbitState struct {
	Angle        float64 // 当前轨道角（弧度，[0, 2π)）
	Radius       float64 // 轨道半径（世界单位）
	AngularSpeed float64 // 角速度（弧度/秒）
	Parent       Vec2    // 父天体当前位置
}

// Advance 推进轨道角并返回新的位置
//
// 角度超过 2π 时只减去一次 2π（dt 相对周期很小时足够）；
// 若结果仍落在 [0, 2π) 之外（dt 过大或初始角非法），退化为取模。
// dt < 0 视为 0。
//
// 参数:
//   - state: 轨道状态，Angle 会被原地修改
//   - dt: 时间步长（秒）
//
// 返回:
//   - Vec2: Parent + Radius·(cos angle, sin angle)
func Advance(state *OrbitState, dt float64) Vec2 {
	if dt < 0 {
		dt = 0
	}

	state.Angle += state.AngularSpeed * dt
	if state.Angle >= TwoPi {
		state.Angle -= TwoPi
	}
	state.Angle = wrapAngle(state.Angle)

	return Position(state)
}

// Position 返回当前轨道角对应的位置，不推进状态
func Position(state *OrbitState) Vec2 {
	s, c := math.Sincos(state.Angle)
	return Vec2{
		X: state.Parent.X + state.Radius*c,
		Y: state.Parent.Y + state.Radius*s,
	}
}

// wrapAngle 把角度折回 [0, 2π)
func wrapAngle(a float64) float64 {
	if a >= 0 && a < TwoPi {
		return a
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// 浮点误差可能让 a+2π 恰好等于 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}
