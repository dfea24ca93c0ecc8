package orbital

// 镜头对齐默认参数
const (
	DefaultAlignSpeed        = 6.0 // 初始插值速度
	DefaultAlignThresholdDeg = 1.0 // 收敛阈值（度）
)

// AlignmentState 对齐状态机的状态
type AlignmentState int

const (
	// AlignIdle 空闲
	AlignIdle AlignmentState = iota
	// AlignAligning 正在把镜头转向行星表面法线
	AlignAligning
)

// AlignmentSmoother 镜头对齐状态机
//
// 每个 tick 调用一次 Step，将镜头旋转角沿最短弧插值到目标方向，
// 插值速度每 tick 乘以 (1.01 + dt)。当镜头"上"方向与目标夹角小于阈值时结束，
// 调用方负责把参考系切换为 FramePlanet。
//
// 重新触发 Start 会覆盖正在进行的对齐（速度重置）。
type AlignmentSmoother struct {
	InitialSpeed float64
	ThresholdDeg float64

	state AlignmentState
	speed float64
	ticks int
}

// NewAlignmentSmoother 创建对齐状态机
// speed 或 thresholdDeg 非正时使用默认值
func NewAlignmentSmoother(speed, thresholdDeg float64) *AlignmentSmoother {
	if speed <= 0 {
		speed = DefaultAlignSpeed
	}
	if thresholdDeg <= 0 {
		thresholdDeg = DefaultAlignThresholdDeg
	}
	return &AlignmentSmoother{
		InitialSpeed: speed,
		ThresholdDeg: thresholdDeg,
		state:        AlignIdle,
	}
}

// Start 开始（或重新开始）对齐
func (a *AlignmentSmoother) Start() {
	a.state = AlignAligning
	a.speed = a.InitialSpeed
	a.ticks = 0
}

// Cancel 取消对齐，不提交参考系切换
func (a *AlignmentSmoother) Cancel() {
	a.state = AlignIdle
	a.speed = 0
	a.ticks = 0
}

// IsAligning 是否正在对齐
func (a *AlignmentSmoother) IsAligning() bool {
	return a.state == AlignAligning
}

// Speed 返回当前插值速度
func (a *AlignmentSmoother) Speed() float64 {
	return a.speed
}

// Ticks 返回本次对齐已经执行的 tick 数
func (a *AlignmentSmoother) Ticks() int {
	return a.ticks
}

// Step 推进一个 tick
//
// 参数:
//   - current: 当前镜头旋转角（弧度）
//   - target: 目标"上"方向（行星表面法线），零向量视为无法对齐，直接结束
//   - dt: 时间步长（秒）
//
// 返回:
//   - next: 新的镜头旋转角
//   - done: 本 tick 是否已收敛（收敛后状态回到 AlignIdle）
func (a *AlignmentSmoother) Step(current float64, target Vec2, dt float64) (next float64, done bool) {
	if a.state != AlignAligning {
		return current, false
	}
	if dt < 0 {
		dt = 0
	}

	if target.IsZero() || AngleDeg(target, CameraUp(current)) < a.ThresholdDeg {
		a.state = AlignIdle
		return current, true
	}

	goal := AlignmentAngle(target)
	t := dt * a.speed
	if t > 1 {
		t = 1
	}
	next = current + ShortestArc(current, goal)*t

	a.speed *= 1.01 + dt
	a.ticks++
	return next, false
}
