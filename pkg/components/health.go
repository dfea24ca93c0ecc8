package components

import "github.com/decker502/spacejusticiar/pkg/orbital"

// HealthComponent 生命值，范围 [0, Max]
// 用于玩家飞船和鱼雷
type HealthComponent struct {
	Cell orbital.Cell
}

// EnergyComponent 能量，慢动作时消耗
type EnergyComponent struct {
	Cell orbital.Cell
}

// IntegrityComponent 行星完整度，被子弹和鱼雷击中时降低
type IntegrityComponent struct {
	Cell orbital.Cell
}
