package systems

import (
	"log"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// InfluenceSystem 检测玩家进入/离开天体影响区
//
// 进入：记录所在天体，启动镜头对齐（对齐完成后由 CameraSystem 切换到 PLANET）
// 离开：取消对齐，参考系回到 GLOBAL，镜头回正
// 同时处于多个影响区时取半径最小的一个。
type InfluenceSystem struct {
	em     *ecs.EntityManager
	world  *game.WorldState
	space  *game.CollisionSpace
	camera *CameraSystem
}

// NewInfluenceSystem 创建影响区系统
func NewInfluenceSystem(em *ecs.EntityManager, world *game.WorldState, space *game.CollisionSpace, camera *CameraSystem) *InfluenceSystem {
	return &InfluenceSystem{em: em, world: world, space: space, camera: camera}
}

// Update 检测进入/离开事件
func (s *InfluenceSystem) Update(dt float64) {
	id := s.world.Player
	if !alive(s.em, id) {
		return
	}
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok || pc.Dead {
		return
	}
	col, ok := ecs.GetComponent[*components.ColliderComponent](s.em, id)
	if !ok {
		return
	}
	pos, _ := positionOf(s.em, id)

	best := s.innermostZone(col, pos)
	if best == pc.Planet {
		return
	}

	if pc.Planet != ecs.InvalidEntity {
		s.exit(pc)
	}
	if best != ecs.InvalidEntity {
		s.enter(pc, best)
	}
}

func (s *InfluenceSystem) innermostZone(col *components.ColliderComponent, pos orbital.Vec2) ecs.EntityID {
	best := ecs.InvalidEntity
	bestRadius := 0.0
	for _, bodyID := range s.space.Nearby(col.Object, components.TagInfluence) {
		zone, ok := ecs.GetComponent[*components.InfluenceZoneComponent](s.em, bodyID)
		if !ok {
			continue
		}
		center, ok := positionOf(s.em, bodyID)
		if !ok || center.Sub(pos).LenSq() >= zone.Radius*zone.Radius {
			continue
		}
		if best == ecs.InvalidEntity || zone.Radius < bestRadius {
			best = bodyID
			bestRadius = zone.Radius
		}
	}
	return best
}

func (s *InfluenceSystem) enter(pc *components.PlayerComponent, body ecs.EntityID) {
	pc.Planet = body
	if s.camera != nil {
		s.camera.BeginAlignment()
	}
	log.Printf("[Influence] 进入 %s 的影响区", bodyName(s.em, body))
}

func (s *InfluenceSystem) exit(pc *components.PlayerComponent) {
	log.Printf("[Influence] 离开 %s 的影响区", bodyName(s.em, pc.Planet))
	if s.camera != nil {
		s.camera.CancelAlignment()
		s.camera.LevelOut()
	}
	if pc.Frame != orbital.FrameGlobal {
		s.world.FrameSwitches++
	}
	pc.Frame = orbital.FrameGlobal
	pc.Planet = ecs.InvalidEntity
}

func bodyName(em *ecs.EntityManager, id ecs.EntityID) string {
	if body, ok := ecs.GetComponent[*components.CelestialBodyComponent](em, id); ok {
		return body.Name
	}
	return "?"
}
