package components

import (
	"image/color"

	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// CameraComponent 跟随玩家的旋转镜头
type CameraComponent struct {
	// Position 镜头中心（世界坐标）
	Position orbital.Vec2
	// Roll 镜头旋转角（弧度），镜头"上"方向 = GlobalUp 旋转 Roll
	Roll float64
	// Zoom 每世界单位像素数
	Zoom float64

	// Smoother 进入影响区后把镜头转到行星表面法线的状态机
	Smoother *orbital.AlignmentSmoother

	// 受击震动
	ShakeDuration  float64
	ShakeMagnitude float64
	ShakeSpeed     float64
	ShakeElapsed   float64
	ShakeOffset    orbital.Vec2

	// 全屏闪光
	FlashColor     color.RGBA
	FlashDuration  float64
	FlashRemaining float64
}
