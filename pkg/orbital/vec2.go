// Package orbital 提供轨道积分、参考系解析和镜头对齐等纯数值工具。
//
// 本包不依赖 ECS 或 Ebitengine，所有函数都可以在单元测试中直接调用。
// 世界坐标系约定：Y 轴向上，角度以弧度表示（除非函数名标明 Deg）。
package orbital

import "math"

// Vec2 二维向量（世界坐标）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg 返回 -v
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot 点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq 长度平方
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len 长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized 返回单位向量
// 零向量返回零向量，不报错
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen 将长度限制在 max 以内，方向不变
func (v Vec2) ClampLen(max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	lsq := v.LenSq()
	if lsq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(lsq))
}

// Rotate 逆时针旋转 rad 弧度
func (v Vec2) Rotate(rad float64) Vec2 {
	s, c := math.Sincos(rad)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// AngleDeg 返回两个向量之间的夹角（度，0 ~ 180）
// 任一向量为零时返回 0
func AngleDeg(a, b Vec2) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}
