package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
//
// 图像以实体位置为中心绘制；Size 为图像直径对应的世界单位。
type SpriteComponent struct {
	Image *ebiten.Image
	Size  float64
	Tint  color.RGBA
	// Layer 绘制顺序，越小越先画
	Layer int
	// Hidden 不绘制（如对象池中未激活的特效）
	Hidden bool
}

// 绘制层
const (
	LayerBackground = iota
	LayerBody
	LayerEffect
	LayerShip
	LayerProjectile
)
