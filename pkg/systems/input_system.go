package systems

import (
	"github.com/decker502/spacejusticiar/pkg/orbital"
	"github.com/decker502/spacejusticiar/pkg/utils"
)

// PlayerIntent 本帧玩家意图，由 InputSystem 采样
type PlayerIntent struct {
	// Thrust 推力轴：X 为右(+)/左(-)，Y 为上(+)/下(-)，分量取 -1/0/1
	Thrust orbital.Vec2
	Boost  bool

	SlowMotionHeld     bool
	SlowMotionPressed  bool
	SlowMotionReleased bool

	Fire bool
	// Aim 瞄准点（世界坐标），仅鼠标射击时有效；HasAim 为 false 时沿机头方向射击
	Aim    orbital.Vec2
	HasAim bool

	Restart       bool
	ToggleBorders bool
}

// InputSystem 把输入源采样为 PlayerIntent
type InputSystem struct {
	input  utils.InputSource
	intent PlayerIntent

	// Unproject 屏幕坐标 -> 世界坐标，为 nil 时鼠标不参与瞄准
	Unproject func(sx, sy float64) orbital.Vec2
}

// NewInputSystem 创建输入系统
func NewInputSystem(input utils.InputSource) *InputSystem {
	return &InputSystem{input: input}
}

// Intent 返回本帧的玩家意图
func (s *InputSystem) Intent() *PlayerIntent {
	return &s.intent
}

// Update 采样输入
func (s *InputSystem) Update(dt float64) {
	in := s.input
	intent := PlayerIntent{
		Boost:              in.IsJustPressed(utils.ActionBoost),
		SlowMotionHeld:     in.IsPressed(utils.ActionSlowMotion),
		SlowMotionPressed:  in.IsJustPressed(utils.ActionSlowMotion),
		SlowMotionReleased: in.IsJustReleased(utils.ActionSlowMotion),
		Restart:            in.IsJustPressed(utils.ActionRestart),
		ToggleBorders:      in.IsJustPressed(utils.ActionToggleBorders),
	}

	// 相反方向同时按下时 W/A 优先
	switch {
	case in.IsPressed(utils.ActionThrustUp):
		intent.Thrust.Y = 1
	case in.IsPressed(utils.ActionThrustDown):
		intent.Thrust.Y = -1
	}
	switch {
	case in.IsPressed(utils.ActionThrustLeft):
		intent.Thrust.X = -1
	case in.IsPressed(utils.ActionThrustRight):
		intent.Thrust.X = 1
	}

	aimed := in.IsPressed(utils.ActionAimedFire)
	intent.Fire = aimed || in.IsPressed(utils.ActionFire)
	if aimed && s.Unproject != nil {
		x, y := in.CursorPosition()
		intent.Aim = s.Unproject(float64(x), float64(y))
		intent.HasAim = true
	}

	s.intent = intent
}
