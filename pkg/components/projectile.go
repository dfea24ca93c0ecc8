package components

import "github.com/decker502/spacejusticiar/pkg/ecs"

// ProjectileComponent 子弹
// 只对 TargetTag 匹配的实体造成伤害
type ProjectileComponent struct {
	Damage    float64
	TargetTag string
	Owner     ecs.EntityID
}

// TorpedoComponent 鱼雷，沿目标行星的"下"方向飞行
type TorpedoComponent struct {
	Target ecs.EntityID
}
