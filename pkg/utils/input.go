// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 游戏动作，与具体按键解耦
type Action int

const (
	ActionThrustUp Action = iota
	ActionThrustDown
	ActionThrustLeft
	ActionThrustRight
	ActionBoost
	ActionSlowMotion
	ActionFire
	ActionRestart
	ActionToggleBorders
	ActionToggleFullscreen
	// ActionAimedFire 鼠标左键射击，朝指针方向；没有键盘绑定
	ActionAimedFire
)

// InputSource 输入源
// 系统只依赖该接口，测试中用 FakeInput 替代键盘
type InputSource interface {
	// IsPressed 动作对应的按键当前是否按下
	IsPressed(a Action) bool
	// IsJustPressed 动作对应的按键是否在本帧刚按下
	IsJustPressed(a Action) bool
	// IsJustReleased 动作对应的按键是否在本帧刚松开
	IsJustReleased(a Action) bool
	// CursorPosition 指针位置（屏幕坐标）
	CursorPosition() (int, int)
}

// DefaultKeyBindings 默认键位
func DefaultKeyBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionThrustUp:         {ebiten.KeyW},
		ActionThrustDown:       {ebiten.KeyS},
		ActionThrustLeft:       {ebiten.KeyA},
		ActionThrustRight:      {ebiten.KeyD},
		ActionBoost:            {ebiten.KeyShiftLeft},
		ActionSlowMotion:       {ebiten.KeySpace},
		ActionFire:             {ebiten.KeyJ},
		ActionRestart:          {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		ActionToggleBorders:    {ebiten.KeyB},
		ActionToggleFullscreen: {ebiten.KeyF11},
	}
}

// KeyboardInput 基于 Ebiten 键盘轮询的输入源
// ActionAimedFire 由鼠标左键触发
type KeyboardInput struct {
	bindings map[Action][]ebiten.Key
}

// NewKeyboardInput 创建键盘输入源，bindings 为 nil 时使用默认键位
func NewKeyboardInput(bindings map[Action][]ebiten.Key) *KeyboardInput {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &KeyboardInput{bindings: bindings}
}

func (k *KeyboardInput) IsPressed(a Action) bool {
	if a == ActionAimedFire && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *KeyboardInput) IsJustPressed(a Action) bool {
	if a == ActionAimedFire && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (k *KeyboardInput) IsJustReleased(a Action) bool {
	if a == ActionAimedFire && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return true
	}
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustReleased(key) {
			return true
		}
	}
	return false
}

func (k *KeyboardInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// FakeInput 可编程的输入源，用于测试
//
// Press/Release 修改按下状态并记录本帧边沿，EndFrame 清除边沿。
type FakeInput struct {
	pressed  map[Action]bool
	just     map[Action]bool
	released map[Action]bool
	CursorX  int
	CursorY  int
}

// NewFakeInput 创建空输入源
func NewFakeInput() *FakeInput {
	return &FakeInput{
		pressed:  make(map[Action]bool),
		just:     make(map[Action]bool),
		released: make(map[Action]bool),
	}
}

// Press 按下动作
func (f *FakeInput) Press(a Action) {
	if !f.pressed[a] {
		f.just[a] = true
	}
	f.pressed[a] = true
}

// Release 松开动作
func (f *FakeInput) Release(a Action) {
	if f.pressed[a] {
		f.released[a] = true
	}
	delete(f.pressed, a)
}

// EndFrame 清除本帧的按下/松开边沿
func (f *FakeInput) EndFrame() {
	f.just = make(map[Action]bool)
	f.released = make(map[Action]bool)
}

func (f *FakeInput) IsPressed(a Action) bool      { return f.pressed[a] }
func (f *FakeInput) IsJustPressed(a Action) bool  { return f.just[a] }
func (f *FakeInput) IsJustReleased(a Action) bool { return f.released[a] }
func (f *FakeInput) CursorPosition() (int, int)   { return f.CursorX, f.CursorY }
