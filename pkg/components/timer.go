package components

// CooldownTimer 正计时冷却计时器
//
// Start 后开始累计，达到 Duration 后自动停止。
// 值类型，嵌入其他组件使用。
type CooldownTimer struct {
	Duration float64
	Elapsed  float64
	Running  bool
}

// LauncherComponent 鱼雷发射器
type LauncherComponent struct {
	Period  float64 // 发射间隔（秒）
	Elapsed float64
	Fired   int // 已发射数量
}
