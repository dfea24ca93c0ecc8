package components

// LifetimeComponent 管理实体的存活时间
// 用于子弹、粒子和死亡延迟销毁
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大存活时间(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
