package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// CameraSystem 管理跟随镜头：位置跟随、进入影响区后的旋转对齐、
// PLANET 参考系下的"脚下即下方"对齐，以及受击震动和闪光。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	world         *game.WorldState
	screenW       float64
	screenH       float64
}

// NewCameraSystem 创建镜头系统，镜头实体由 world.Camera 指定
func NewCameraSystem(em *ecs.EntityManager, world *game.WorldState, screenW, screenH int) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		world:         world,
		screenW:       float64(screenW),
		screenH:       float64(screenH),
	}
}

func (cs *CameraSystem) camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.world.Camera)
	if !ok {
		return nil
	}
	return cam
}

// BeginAlignment 开始把镜头转向当前天体的表面法线
func (cs *CameraSystem) BeginAlignment() {
	if cam := cs.camera(); cam != nil && cam.Smoother != nil {
		cam.Smoother.Start()
	}
}

// CancelAlignment 取消正在进行的对齐
func (cs *CameraSystem) CancelAlignment() {
	if cam := cs.camera(); cam != nil && cam.Smoother != nil {
		cam.Smoother.Cancel()
	}
}

// LevelOut 镜头回正（Roll = 0），使画面上方与 GLOBAL 参考系的上方一致
func (cs *CameraSystem) LevelOut() {
	if cam := cs.camera(); cam != nil {
		cam.Roll = 0
	}
}

// Shake 开始震动镜头
func (cs *CameraSystem) Shake(duration, magnitude, speed float64) {
	if cam := cs.camera(); cam != nil {
		cam.ShakeDuration = duration
		cam.ShakeMagnitude = magnitude
		cam.ShakeSpeed = speed
		cam.ShakeElapsed = 0
	}
}

// Flash 全屏闪光
func (cs *CameraSystem) Flash(c color.RGBA, duration float64) {
	if cam := cs.camera(); cam != nil {
		cam.FlashColor = c
		cam.FlashDuration = duration
		cam.FlashRemaining = duration
	}
}

// Update dt 为真实时间；对齐使用缩放后的游戏时间，时间冻结时镜头也停止旋转
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.camera()
	if cam == nil {
		return
	}

	cs.updateEffects(cam, dt)

	em := cs.entityManager
	id := cs.world.Player
	if !alive(em, id) {
		return
	}
	pc, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	pos, _ := positionOf(em, id)
	cam.Position = pos

	sdt := cs.world.ScaledDelta(dt)
	if cam.Smoother != nil && cam.Smoother.IsAligning() {
		if pc.Planet == ecs.InvalidEntity {
			cam.Smoother.Cancel()
		} else {
			next, done := cam.Smoother.Step(cam.Roll, surfaceNormal(em, pc.Planet, pos), sdt)
			cam.Roll = next
			if done {
				pc.Frame = orbital.FramePlanet
				pc.PrevPosition = orbital.Vec2{X: math.NaN()}
				cs.world.FrameSwitches++
				log.Printf("[Camera] 对齐完成 (%d ticks)，切换到 %s 参考系", cam.Smoother.Ticks(), pc.Frame)
			}
		}
	}

	// PLANET 参考系下玩家移动后镜头立即对齐
	if pc.Frame == orbital.FramePlanet && pos != pc.PrevPosition {
		if up := playerUp(em, pc, pos); !up.IsZero() {
			cam.Roll = orbital.AlignmentAngle(up)
		}
		pc.PrevPosition = pos
	}
}

func (cs *CameraSystem) updateEffects(cam *components.CameraComponent, dt float64) {
	if cam.ShakeElapsed < cam.ShakeDuration {
		cam.ShakeElapsed += dt
		fade := 1 - cam.ShakeElapsed/cam.ShakeDuration
		if fade < 0 {
			fade = 0
		}
		t := cam.ShakeElapsed * cam.ShakeSpeed * orbital.TwoPi
		cam.ShakeOffset = orbital.Vec2{
			X: math.Sin(t*1.3) * cam.ShakeMagnitude * fade,
			Y: math.Cos(t*0.7) * cam.ShakeMagnitude * fade,
		}
	} else {
		cam.ShakeOffset = orbital.Vec2{}
	}

	if cam.FlashRemaining > 0 {
		cam.FlashRemaining -= dt
		if cam.FlashRemaining < 0 {
			cam.FlashRemaining = 0
		}
	}
}

// WorldToScreen 把世界坐标转换为屏幕坐标
//
// 世界 Y 轴向上、屏幕 Y 轴向下；镜头 Roll 为逆时针时画面顺时针旋转。
func WorldToScreen(cam *components.CameraComponent, screenW, screenH float64, p orbital.Vec2) (float64, float64) {
	rel := p.Sub(cam.Position.Add(cam.ShakeOffset)).Rotate(-cam.Roll)
	return screenW/2 + rel.X*cam.Zoom, screenH/2 - rel.Y*cam.Zoom
}

// ScreenToWorld WorldToScreen 的逆变换
func ScreenToWorld(cam *components.CameraComponent, screenW, screenH float64, sx, sy float64) orbital.Vec2 {
	zoom := cam.Zoom
	if zoom == 0 {
		zoom = 1
	}
	rel := orbital.Vec2{X: (sx - screenW/2) / zoom, Y: (screenH/2 - sy) / zoom}
	return rel.Rotate(cam.Roll).Add(cam.Position.Add(cam.ShakeOffset))
}

// Unproject 屏幕坐标转世界坐标（供 InputSystem 瞄准使用）
func (cs *CameraSystem) Unproject(sx, sy float64) orbital.Vec2 {
	cam := cs.camera()
	if cam == nil {
		return orbital.Vec2{}
	}
	return ScreenToWorld(cam, cs.screenW, cs.screenH, sx, sy)
}
