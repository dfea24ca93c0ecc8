package game

import (
	"math"

	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
	"github.com/solarlune/resolv"
)

const (
	// collisionCellSize resolv 网格单元边长（世界单位）
	collisionCellSize = 8
	// minProxyHalfSize 代理对象最小半宽，过小的对象可能不占任何网格单元
	minProxyHalfSize = 1.0
)

// CollisionSpace 包装 resolv.Space，提供以世界坐标为中心的圆形代理
//
// resolv 的网格从 (0,0) 开始，世界原点（恒星）位于网格中心，
// 所以所有坐标都加上 halfExtent 偏移。超出网格范围的对象不参与查询。
// 每个代理对象的 Data 保存对应的 ecs.EntityID。
type CollisionSpace struct {
	space      *resolv.Space
	halfExtent float64
}

// NewCollisionSpace 创建覆盖 [-halfExtent, halfExtent]² 的碰撞空间
func NewCollisionSpace(halfExtent float64) *CollisionSpace {
	if halfExtent < collisionCellSize {
		halfExtent = collisionCellSize
	}
	size := int(math.Ceil(halfExtent*2/collisionCellSize)) * collisionCellSize
	return &CollisionSpace{
		space:      resolv.NewSpace(size, size, collisionCellSize, collisionCellSize),
		halfExtent: float64(size) / 2,
	}
}

// Contains 世界坐标是否在空间范围内（范围外的代理不会被任何查询命中）
func (cs *CollisionSpace) Contains(pos orbital.Vec2) bool {
	return math.Abs(pos.X) < cs.halfExtent && math.Abs(pos.Y) < cs.halfExtent
}

// Add 为实体添加以 pos 为圆心、radius 为半径的代理对象
func (cs *CollisionSpace) Add(id ecs.EntityID, pos orbital.Vec2, radius float64, tags ...string) *resolv.Object {
	x, y, w, h := cs.bounds(pos, radius)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = id
	cs.space.Add(obj)
	return obj
}

// Move 把代理对象移动到新位置
func (cs *CollisionSpace) Move(obj *resolv.Object, pos orbital.Vec2, radius float64) {
	if obj == nil {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = cs.bounds(pos, radius)
	obj.Update()
}

// Remove 从空间中移除代理对象
func (cs *CollisionSpace) Remove(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	cs.space.Remove(obj)
}

// Nearby 返回与 obj 共享网格单元、且带有任一标签的实体（宽相位）
// 结果去重，不包含 obj 自身
func (cs *CollisionSpace) Nearby(obj *resolv.Object, tags ...string) []ecs.EntityID {
	if obj == nil || obj.Space == nil {
		return nil
	}
	col := obj.Check(0, 0, tags...)
	if col == nil {
		return nil
	}

	result := make([]ecs.EntityID, 0, len(col.Objects))
	seen := make(map[ecs.EntityID]bool, len(col.Objects))
	for _, other := range col.Objects {
		id, ok := other.Data.(ecs.EntityID)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func (cs *CollisionSpace) bounds(pos orbital.Vec2, radius float64) (x, y, w, h float64) {
	if radius < minProxyHalfSize {
		radius = minProxyHalfSize
	}
	return pos.X - radius + cs.halfExtent, pos.Y - radius + cs.halfExtent, radius * 2, radius * 2
}
