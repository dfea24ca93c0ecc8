package game

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// 程序生成的贴图（不依赖图片资源）
//
// 所有贴图以中心为锚点、朝上（-Y 屏幕方向）绘制，
// 运行时由 RenderSystem 按世界尺寸缩放并旋转。

// RenderBodyTexture 生成天体贴图：大气光晕 + 带明暗的球面
// size 为贴图边长（像素），天体直径占 size 的 2/3，其余留给大气层
func RenderBodyTexture(size int, body, atmosphere color.RGBA) image.Image {
	if size < 8 {
		size = 8
	}
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	r := float64(size) / 3

	if atmosphere.A > 0 {
		glow := gg.NewRadialGradient(c, c, r*0.9, c, c, c)
		glow.AddColorStop(0, atmosphere)
		glow.AddColorStop(1, color.RGBA{atmosphere.R, atmosphere.G, atmosphere.B, 0})
		dc.SetFillStyle(glow)
		dc.DrawCircle(c, c, c)
		dc.Fill()
	}

	// 光源在左上方
	shade := gg.NewRadialGradient(c-r*0.4, c-r*0.4, r*0.1, c, c, r)
	shade.AddColorStop(0, lighten(body, 0.35))
	shade.AddColorStop(0.7, body)
	shade.AddColorStop(1, darken(body, 0.45))
	dc.SetFillStyle(shade)
	dc.DrawCircle(c, c, r)
	dc.Fill()

	return dc.Image()
}

// BodyTextureScale 天体贴图边长相对天体直径的倍数
const BodyTextureScale = 1.5

// RenderShipTexture 生成飞船贴图（白色，绘制时着色）
func RenderShipTexture(size int) image.Image {
	if size < 8 {
		size = 8
	}
	dc := gg.NewContext(size, size)
	s := float64(size)

	dc.MoveTo(s/2, s*0.05)
	dc.LineTo(s*0.9, s*0.9)
	dc.LineTo(s/2, s*0.7)
	dc.LineTo(s*0.1, s*0.9)
	dc.ClosePath()
	dc.SetRGB(1, 1, 1)
	dc.FillPreserve()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.SetLineWidth(math.Max(1, s/32))
	dc.Stroke()

	return dc.Image()
}

// RenderTorpedoTexture 生成鱼雷贴图：细长胶囊，弹头朝上
func RenderTorpedoTexture(size int) image.Image {
	if size < 8 {
		size = 8
	}
	dc := gg.NewContext(size, size)
	s := float64(size)
	w := s * 0.3

	dc.DrawRoundedRectangle((s-w)/2, s*0.05, w, s*0.9, w/2)
	dc.SetRGB(0.75, 0.2, 0.2)
	dc.Fill()

	dc.DrawCircle(s/2, s*0.05+w/2, w*0.35)
	dc.SetRGB(1, 0.85, 0.3)
	dc.Fill()

	return dc.Image()
}

// RenderDotTexture 生成边缘柔和的圆点（子弹、粒子），白色
func RenderDotTexture(size int) image.Image {
	if size < 4 {
		size = 4
	}
	dc := gg.NewContext(size, size)
	c := float64(size) / 2

	g := gg.NewRadialGradient(c, c, 0, c, c, c)
	g.AddColorStop(0, color.RGBA{255, 255, 255, 255})
	g.AddColorStop(0.6, color.RGBA{255, 255, 255, 200})
	g.AddColorStop(1, color.RGBA{255, 255, 255, 0})
	dc.SetFillStyle(g)
	dc.DrawCircle(c, c, c)
	dc.Fill()

	return dc.Image()
}

func lighten(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) + (255-float64(v))*f))
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}

func darken(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * (1 - f)))
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}
