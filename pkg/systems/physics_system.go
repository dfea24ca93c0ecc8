package systems

import (
	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// PhysicsSystem 积分刚体运动，并处理玩家与天体表面的接触
//
// 处于影响区的玩家和飞向目标的鱼雷会被所在天体的轨道位移带动，
// 相当于挂在天体的局部坐标系下运动。
type PhysicsSystem struct {
	em    *ecs.EntityManager
	space *game.CollisionSpace
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, space *game.CollisionSpace) *PhysicsSystem {
	return &PhysicsSystem{em: em, space: space}
}

// Update dt 为已缩放的游戏时间
func (ps *PhysicsSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.RigidBodyComponent](ps.em) {
		if ps.em.IsMarkedForDestroy(id) {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.em, id)
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](ps.em, id)

		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}
		rb.Velocity = rb.Velocity.Add(rb.Force.Scale(dt / mass))
		rb.Force = orbital.Vec2{}

		tr.Position = tr.Position.Add(rb.Velocity.Scale(dt))
		if carrier := ps.carrierOf(id); carrier != ecs.InvalidEntity {
			if body, ok := ecs.GetComponent[*components.CelestialBodyComponent](ps.em, carrier); ok {
				tr.Position = tr.Position.Add(body.Displacement)
			}
		}

		col, hasCollider := ecs.GetComponent[*components.ColliderComponent](ps.em, id)
		if hasCollider && col.Tag == components.TagPlayer {
			ps.resolveSurfaceContact(tr, rb, col)
		}
		if hasCollider && ps.space != nil {
			ps.space.Move(col.Object, tr.Position, col.Radius)
		}
	}
}

// carrierOf 返回带动实体运动的天体
func (ps *PhysicsSystem) carrierOf(id ecs.EntityID) ecs.EntityID {
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](ps.em, id); ok {
		return pc.Planet
	}
	if torp, ok := ecs.GetComponent[*components.TorpedoComponent](ps.em, id); ok {
		return torp.Target
	}
	return ecs.InvalidEntity
}

// resolveSurfaceContact 把穿入天体表面的玩家推回表面，并去掉指向天体的速度分量
func (ps *PhysicsSystem) resolveSurfaceContact(tr *components.TransformComponent,
	rb *components.RigidBodyComponent, col *components.ColliderComponent) {
	if ps.space == nil || col.Object == nil {
		return
	}
	ps.space.Move(col.Object, tr.Position, col.Radius)

	for _, bodyID := range ps.space.Nearby(col.Object, components.TagCollidable) {
		body, ok := ecs.GetComponent[*components.CelestialBodyComponent](ps.em, bodyID)
		if !ok {
			continue
		}
		center, ok := positionOf(ps.em, bodyID)
		if !ok || !circlesOverlap(tr.Position, col.Radius, center, body.Scale) {
			continue
		}

		n := tr.Position.Sub(center).Normalized()
		if n.IsZero() {
			n = orbital.GlobalUp
		}
		tr.Position = center.Add(n.Scale(body.Scale + col.Radius))
		if vn := rb.Velocity.Dot(n); vn < 0 {
			rb.Velocity = rb.Velocity.Sub(n.Scale(vn))
		}
	}
}
