package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 贴图边长（像素），运行时按世界尺寸缩放
const (
	bodyTextureSize    = 256
	shipTextureSize    = 64
	torpedoTextureSize = 48
	dotTextureSize     = 16
)

// ResourceManager 集中管理程序生成的贴图和字体
//
// 贴图在第一次请求时由 texture_factory 生成并缓存。
// 非线程安全，只能在游戏循环 goroutine 中使用。
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadFont 加载内置的 Go Regular 字体
func (rm *ResourceManager) LoadFont() error {
	if rm.fontSource != nil {
		return nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to create font source: %w", err)
	}
	rm.fontSource = source
	return nil
}

// GetFont 返回指定字号的字体，字体未加载时返回 nil
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		return nil
	}
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// BodyImage 返回天体贴图（按名称缓存）
func (rm *ResourceManager) BodyImage(name string, body, atmosphere color.RGBA) *ebiten.Image {
	key := "body:" + name
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(RenderBodyTexture(bodyTextureSize, body, atmosphere))
	rm.imageCache[key] = img
	return img
}

// ShipImage 返回飞船贴图
func (rm *ResourceManager) ShipImage() *ebiten.Image {
	return rm.cached("ship", func() *ebiten.Image {
		return ebiten.NewImageFromImage(RenderShipTexture(shipTextureSize))
	})
}

// TorpedoImage 返回鱼雷贴图
func (rm *ResourceManager) TorpedoImage() *ebiten.Image {
	return rm.cached("torpedo", func() *ebiten.Image {
		return ebiten.NewImageFromImage(RenderTorpedoTexture(torpedoTextureSize))
	})
}

// DotImage 返回圆点贴图（子弹、粒子、爆炸）
func (rm *ResourceManager) DotImage() *ebiten.Image {
	return rm.cached("dot", func() *ebiten.Image {
		return ebiten.NewImageFromImage(RenderDotTexture(dotTextureSize))
	})
}

func (rm *ResourceManager) cached(key string, create func() *ebiten.Image) *ebiten.Image {
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	img := create()
	rm.imageCache[key] = img
	return img
}
