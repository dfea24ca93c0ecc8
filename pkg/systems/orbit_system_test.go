package systems

import (
	"math"
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
)

func TestOrbitSystemAdvancesBodies(t *testing.T) {
	em := ecs.NewEntityManager()
	space := game.NewCollisionSpace(400)
	sys := &config.StarSystemConfig{
		Name: "Orbit",
		Bodies: []config.BodyConfig{
			{Name: "Sun", Kind: config.BodyStar, Scale: 10, Color: "#ffffff"},
			{Name: "Home", Kind: config.BodyPlanet, Parent: "Sun", Scale: 5, OrbitRadius: 200,
				OrbitSpeed: 0.01, RotationSpeed: 90, Color: "#3a7bd5", Home: true},
			{Name: "Moon", Kind: config.BodyMoon, Parent: "Home", Scale: 1, OrbitRadius: 20, Color: "#b8b8b8"},
		},
	}
	built, err := entities.BuildStarSystem(em, nil, space, sys, config.DefaultGameplayConfig())
	if err != nil {
		t.Fatalf("BuildStarSystem() error: %v", err)
	}

	NewOrbitSystem(em, space).Update(1)

	home := built.Bodies["Home"]
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, home)
	if !approx(orbit.State.Angle, 0.01, 1e-12) {
		t.Errorf("angle = %v, want 0.01", orbit.State.Angle)
	}

	homePos, _ := positionOf(em, home)
	if !approx(homePos.X, 200*math.Cos(0.01), 1e-9) || !approx(homePos.Y, 200*math.Sin(0.01), 1e-9) {
		t.Errorf("home position = %v", homePos)
	}

	// 卫星以父天体本 tick 的新位置为中心
	moonPos, _ := positionOf(em, built.Bodies["Moon"])
	if !approx(moonPos.X, homePos.X+20, 1e-9) || !approx(moonPos.Y, homePos.Y, 1e-9) {
		t.Errorf("moon position = %v, want home + (20, 0)", moonPos)
	}

	body, _ := ecs.GetComponent[*components.CelestialBodyComponent](em, home)
	if !approx(body.Displacement.X, homePos.X-200, 1e-9) || !approx(body.Displacement.Y, homePos.Y, 1e-9) {
		t.Errorf("displacement = %v", body.Displacement)
	}

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, home)
	if !approx(tr.Rotation, math.Pi/2, 1e-9) {
		t.Errorf("rotation = %v, want pi/2 after 1s at 90 deg/s", tr.Rotation)
	}

	// 恒星不动
	sun, _ := ecs.GetComponent[*components.CelestialBodyComponent](em, built.Bodies["Sun"])
	if !sun.Displacement.IsZero() {
		t.Errorf("star displacement = %v, want zero", sun.Displacement)
	}
}

func TestOrbitSystemAngleStaysInRange(t *testing.T) {
	tw := newTestWorld(t)
	far := tw.sys.Bodies["Far"]
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](tw.em, far)
	orbit.State.AngularSpeed = 3

	s := NewOrbitSystem(tw.em, tw.space)
	for i := 0; i < 500; i++ {
		s.Update(0.37)
		if orbit.State.Angle < 0 || orbit.State.Angle >= 2*math.Pi {
			t.Fatalf("tick %d: angle %v left [0, 2pi)", i, orbit.State.Angle)
		}
	}
}
