package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，超出范围先钳制

// Clamp01 把 t 钳制到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic 开始快结束慢，用于爆炸半径扩张
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 开始慢结束快，用于淡出
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpUint8 颜色通道插值
func LerpUint8(a, b uint8, t float64) uint8 {
	v := Lerp(float64(a), float64(b), Clamp01(t))
	return uint8(math.Round(v))
}
