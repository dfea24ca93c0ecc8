package systems

import (
	"math"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// OrbitSystem 推进所有天体的轨道和自转
//
// 天体按实体 ID 升序处理，星系工厂保证父天体先于子天体创建，
// 所以子天体总是使用父天体本 tick 更新后的位置。
type OrbitSystem struct {
	entityManager *ecs.EntityManager
	space         *game.CollisionSpace
}

// NewOrbitSystem 创建轨道系统
func NewOrbitSystem(em *ecs.EntityManager, space *game.CollisionSpace) *OrbitSystem {
	return &OrbitSystem{entityManager: em, space: space}
}

// Update 推进一个 tick，dt 为已缩放的游戏时间
func (s *OrbitSystem) Update(dt float64) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.CelestialBodyComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		body, _ := ecs.GetComponent[*components.CelestialBodyComponent](em, id)

		old := tr.Position
		if orbit, ok := ecs.GetComponent[*components.OrbitComponent](em, id); ok {
			if parentPos, ok := positionOf(em, orbit.Parent); ok {
				orbit.State.Parent = parentPos
			}
			tr.Position = orbital.Advance(&orbit.State, dt)
		}
		body.Displacement = tr.Position.Sub(old)

		if body.RotateBody && dt > 0 {
			tr.Rotation = math.Mod(tr.Rotation+body.RotationSpeed*math.Pi/180*dt, orbital.TwoPi)
		}

		if s.space == nil {
			continue
		}
		if col, ok := ecs.GetComponent[*components.ColliderComponent](em, id); ok {
			s.space.Move(col.Object, tr.Position, col.Radius)
		}
		if zone, ok := ecs.GetComponent[*components.InfluenceZoneComponent](em, id); ok {
			s.space.Move(zone.Object, tr.Position, zone.Radius)
		}
	}
}
