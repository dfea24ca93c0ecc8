package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

func TestCameraAlignmentCommitsPlanetFrame(t *testing.T) {
	tw := newTestWorld(t)
	far := tw.sys.Bodies["Far"]
	farPos, _ := positionOf(tw.em, far)

	pc := tw.player()
	pc.Frame = orbital.FrameGlobal
	pc.Planet = far
	tw.movePlayer(farPos.Add(orbital.Vec2{X: 4}))
	tw.camera.BeginAlignment()

	ticks := 0
	for ; ticks < 1000 && pc.Frame != orbital.FramePlanet; ticks++ {
		tw.camera.Update(testDT)
	}
	if pc.Frame != orbital.FramePlanet {
		t.Fatal("alignment never finished")
	}
	if ticks < 2 {
		t.Errorf("alignment finished in %d ticks, expected a smooth turn", ticks)
	}

	// 表面法线 (1,0) 对应镜头旋转 -π/2
	if roll := tw.cameraComp().Roll; !approx(roll, -math.Pi/2, 1e-9) {
		t.Errorf("roll = %v, want -pi/2", roll)
	}
	if tw.world.FrameSwitches != 1 {
		t.Errorf("FrameSwitches = %d, want 1", tw.world.FrameSwitches)
	}
}

func TestCameraFollowsAndSnapsInPlanetFrame(t *testing.T) {
	tw := newTestWorld(t)
	home, _ := positionOf(tw.em, tw.world.HomePlanet)

	tw.movePlayer(home.Add(orbital.Vec2{X: -5}))
	tw.camera.Update(testDT)

	cam := tw.cameraComp()
	if cam.Position != tw.playerTransform().Position {
		t.Errorf("camera position = %v, want player position", cam.Position)
	}
	// 左侧法线 (-1,0) -> roll = π/2
	if !approx(cam.Roll, math.Pi/2, 1e-9) {
		t.Errorf("roll = %v, want pi/2", cam.Roll)
	}

	// GLOBAL 参考系下不再随位置旋转
	tw.player().Frame = orbital.FrameGlobal
	tw.movePlayer(home.Add(orbital.Vec2{Y: -5}))
	tw.camera.Update(testDT)
	if !approx(cam.Roll, math.Pi/2, 1e-9) {
		t.Errorf("roll changed in GLOBAL frame: %v", cam.Roll)
	}
}

func TestCameraAlignmentFrozenWithTime(t *testing.T) {
	tw := newTestWorld(t)
	far := tw.sys.Bodies["Far"]
	farPos, _ := positionOf(tw.em, far)
	tw.player().Frame = orbital.FrameGlobal
	tw.player().Planet = far
	tw.movePlayer(farPos.Add(orbital.Vec2{X: 4}))
	tw.camera.BeginAlignment()

	tw.world.TimeScale = 0
	tw.camera.Update(testDT)
	if tw.cameraComp().Roll != 0 {
		t.Errorf("roll = %v, want 0 while time is frozen", tw.cameraComp().Roll)
	}
}

func TestCameraShakeAndFlashDecay(t *testing.T) {
	tw := newTestWorld(t)
	tw.camera.Shake(0.5, 1, 3)
	tw.camera.Flash(color.RGBA{255, 255, 255, 255}, 0.1)

	tw.camera.Update(0.05)
	cam := tw.cameraComp()
	if cam.ShakeOffset.IsZero() {
		t.Error("shake should offset the camera")
	}
	if !approx(cam.FlashRemaining, 0.05, 1e-9) {
		t.Errorf("FlashRemaining = %v, want 0.05", cam.FlashRemaining)
	}

	for i := 0; i < 20; i++ {
		tw.camera.Update(0.05)
	}
	if !cam.ShakeOffset.IsZero() {
		t.Errorf("shake should end, offset = %v", cam.ShakeOffset)
	}
	if cam.FlashRemaining != 0 {
		t.Errorf("FlashRemaining = %v, want 0", cam.FlashRemaining)
	}
}

func TestWorldScreenTransform(t *testing.T) {
	cam := &components.CameraComponent{
		Position: orbital.Vec2{X: 10, Y: 5},
		Roll:     0.7,
		Zoom:     40,
	}
	const w, h = 1280.0, 720.0

	x, y := WorldToScreen(cam, w, h, cam.Position)
	if !approx(x, w/2, 1e-9) || !approx(y, h/2, 1e-9) {
		t.Errorf("camera center maps to (%v, %v), want screen center", x, y)
	}

	// 镜头"上"方向 1 个单位 -> 屏幕中心正上方 zoom 像素
	above := cam.Position.Add(orbital.CameraUp(cam.Roll))
	x, y = WorldToScreen(cam, w, h, above)
	if !approx(x, w/2, 1e-9) || !approx(y, h/2-40, 1e-9) {
		t.Errorf("camera-up point maps to (%v, %v), want (%v, %v)", x, y, w/2, h/2-40)
	}

	p := orbital.Vec2{X: -3.5, Y: 12.25}
	sx, sy := WorldToScreen(cam, w, h, p)
	back := ScreenToWorld(cam, w, h, sx, sy)
	if !approx(back.X, p.X, 1e-9) || !approx(back.Y, p.Y, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}
