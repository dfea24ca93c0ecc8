package systems

import (
	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// positionOf 返回实体位置
func positionOf(em *ecs.EntityManager, id ecs.EntityID) (orbital.Vec2, bool) {
	if id == ecs.InvalidEntity {
		return orbital.Vec2{}, false
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return orbital.Vec2{}, false
	}
	return tr.Position, true
}

// playerUp 计算玩家当前参考系的"上"方向
// PLANET 参考系但行星已不存在时退回 GlobalUp
func playerUp(em *ecs.EntityManager, pc *components.PlayerComponent, pos orbital.Vec2) orbital.Vec2 {
	if pc.Frame != orbital.FramePlanet {
		return orbital.GlobalUp
	}
	ref, ok := positionOf(em, pc.Planet)
	if !ok {
		return orbital.GlobalUp
	}
	return orbital.Up(orbital.FramePlanet, pos, ref)
}

// surfaceNormal 玩家相对行星中心的方向（镜头对齐目标）
func surfaceNormal(em *ecs.EntityManager, planet ecs.EntityID, pos orbital.Vec2) orbital.Vec2 {
	ref, ok := positionOf(em, planet)
	if !ok {
		return orbital.Vec2{}
	}
	return orbital.Up(orbital.FramePlanet, pos, ref)
}

// circlesOverlap 两圆是否相交
func circlesOverlap(a orbital.Vec2, ra float64, b orbital.Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() < r*r
}

// alive 实体存在且未被标记删除
func alive(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.Exists(id) && !em.IsMarkedForDestroy(id)
}
