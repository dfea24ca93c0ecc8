package orbital

import "math"

// Cell 有上下限的标量资源（生命值、能量、行星完整度）
//
// Value 始终被限制在 [0, Max]。
type Cell struct {
	Value     float64
	Max       float64
	RegenRate float64 // 每秒回复量
}

// NewCell 创建满值的资源单元
func NewCell(max, regenRate float64) Cell {
	if max < 0 {
		max = 0
	}
	return Cell{Value: max, Max: max, RegenRate: regenRate}
}

// Reset 重新初始化数值和上限
func (c *Cell) Reset(value, max float64) {
	if max < 0 {
		max = 0
	}
	c.Max = max
	c.Value = value
	c.clamp()
}

// Damage 扣除 amount，负值忽略
func (c *Cell) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	c.Value -= amount
	c.clamp()
}

// Use 消耗 amount（能量），语义同 Damage
func (c *Cell) Use(amount float64) {
	c.Damage(amount)
}

// Add 增加 amount，负值忽略
func (c *Cell) Add(amount float64) {
	if amount <= 0 {
		return
	}
	c.Value += amount
	c.clamp()
}

// Regen 按回复速率回复 dt 秒
func (c *Cell) Regen(dt float64) {
	if dt <= 0 || c.RegenRate <= 0 {
		return
	}
	c.Add(c.RegenRate * dt)
}

// IsEmpty 是否耗尽
func (c *Cell) IsEmpty() bool {
	return c.Value <= 0
}

// IsFull 是否已满
func (c *Cell) IsFull() bool {
	return c.Value >= c.Max
}

// Fraction 返回 Value/Max，Max 为 0 时返回 0
func (c *Cell) Fraction() float64 {
	if c.Max <= 0 {
		return 0
	}
	return c.Value / c.Max
}

// Percentage 返回向上取整的百分比（0 ~ 100）
func (c *Cell) Percentage() int {
	// 先四舍五入到 1e-9，避免 0.8*100 = 80.00000000000001 被取整为 81
	p := math.Round(c.Fraction()*100*1e9) / 1e9
	return int(math.Ceil(p))
}

func (c *Cell) clamp() {
	if math.IsNaN(c.Value) || c.Value < 0 {
		c.Value = 0
	}
	if c.Value > c.Max {
		c.Value = c.Max
	}
}
