package components

import "github.com/decker502/spacejusticiar/pkg/orbital"

// TransformComponent 实体在世界坐标中的位置和朝向
// 世界坐标 Y 轴向上，Rotation 为逆时针弧度
type TransformComponent struct {
	Position orbital.Vec2
	Rotation float64
}
