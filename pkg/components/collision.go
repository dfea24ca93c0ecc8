package components

import "github.com/solarlune/resolv"

// ColliderComponent 圆形碰撞体
//
// Object 是 resolv 空间中的代理对象，用于宽相位查询；
// 精确判定由系统按圆心距离完成。
type ColliderComponent struct {
	Radius float64
	Tag    string
	// Trigger 触发器只产生进入/离开事件，不阻挡（如影响区）
	Trigger bool
	Object  *resolv.Object
}

// InfluenceZoneComponent 天体影响区（触发器）
// 玩家进入后切换到该天体的参考系
type InfluenceZoneComponent struct {
	Radius float64
	Object *resolv.Object
}
