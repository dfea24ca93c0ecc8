package entities

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSource 提供实体贴图，由 game.ResourceManager 实现
//
// 工厂函数接受 nil（无贴图，用于测试和无窗口环境）。
type TextureSource interface {
	BodyImage(name string, body, atmosphere color.RGBA) *ebiten.Image
	ShipImage() *ebiten.Image
	TorpedoImage() *ebiten.Image
	DotImage() *ebiten.Image
}

func dotImage(ts TextureSource) *ebiten.Image {
	if ts == nil {
		return nil
	}
	return ts.DotImage()
}
