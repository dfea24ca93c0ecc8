package systems

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	spaceColor     = color.RGBA{6, 8, 20, 255}
	starColor      = color.RGBA{200, 210, 255, 255}
	influenceColor = color.RGBA{120, 200, 255, 110}
	homeZoneColor  = color.RGBA{120, 255, 160, 140}
)

// 背景星空：固定在一个循环平铺的方块中，按视差缓慢移动
const (
	starCount    = 160
	starTile     = 1600.0 // 平铺边长（像素）
	starParallax = 0.05
)

type backgroundStar struct {
	x, y, size float64
}

// RenderSystem 绘制游戏世界：星空背景、天体、飞船、子弹、粒子和影响区边界
//
// 世界坐标经镜头变换后绘制，镜头旋转时整个世界反向旋转，
// 保证 PLANET 参考系下行星表面始终在玩家脚下。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	world         *game.WorldState
	screenW       float64
	screenH       float64
	stars         []backgroundStar
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, world *game.WorldState, screenW, screenH int) *RenderSystem {
	rng := rand.New(rand.NewSource(7))
	stars := make([]backgroundStar, starCount)
	for i := range stars {
		stars[i] = backgroundStar{
			x:    rng.Float64() * starTile,
			y:    rng.Float64() * starTile,
			size: 1 + rng.Float64()*1.5,
		}
	}
	return &RenderSystem{
		entityManager: em,
		world:         world,
		screenW:       float64(screenW),
		screenH:       float64(screenH),
		stars:         stars,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)

	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.world.Camera)
	if !ok {
		return
	}

	s.drawStars(screen, cam)
	if s.world.ShowInfluenceBorders {
		s.drawInfluenceBorders(screen, cam)
	}

	for _, id := range drawOrder(s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if sprite.Hidden || sprite.Image == nil || sprite.Size <= 0 {
			continue
		}

		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(cam, s.screenW, s.screenH, tr, sprite.Size, w, h)
		op.ColorScale.ScaleWithColor(sprite.Tint)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sprite.Image, op)
	}

	if cam.FlashRemaining > 0 && cam.FlashDuration > 0 {
		c := cam.FlashColor
		c.A = uint8(float64(c.A) * cam.FlashRemaining / cam.FlashDuration)
		vector.DrawFilledRect(screen, 0, 0, float32(s.screenW), float32(s.screenH), c, false)
	}
}

func (s *RenderSystem) drawStars(screen *ebiten.Image, cam *components.CameraComponent) {
	offX := -cam.Position.X * cam.Zoom * starParallax
	offY := cam.Position.Y * cam.Zoom * starParallax
	sin, cos := math.Sincos(cam.Roll)
	cx, cy := s.screenW/2, s.screenH/2

	for _, st := range s.stars {
		x := math.Mod(st.x+offX, starTile)
		y := math.Mod(st.y+offY, starTile)
		if x < 0 {
			x += starTile
		}
		if y < 0 {
			y += starTile
		}
		// 以屏幕中心为原点旋转，与世界保持同向
		dx, dy := x-starTile/2, y-starTile/2
		rx := cx + dx*cos - dy*sin
		ry := cy + dx*sin + dy*cos
		if rx < 0 || ry < 0 || rx > s.screenW || ry > s.screenH {
			continue
		}
		vector.DrawFilledRect(screen, float32(rx), float32(ry), float32(st.size), float32(st.size), starColor, false)
	}
}

func (s *RenderSystem) drawInfluenceBorders(screen *ebiten.Image, cam *components.CameraComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.InfluenceZoneComponent, *components.TransformComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.InfluenceZoneComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		c := influenceColor
		if id == s.world.HomePlanet {
			c = homeZoneColor
		}
		x, y := WorldToScreen(cam, s.screenW, s.screenH, tr.Position)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(zone.Radius*cam.Zoom), 1.5, c, true)
	}
}

// drawOrder 返回需要绘制的实体，按 Layer 升序、同层按 ID 升序
func drawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](em)
	layers := make(map[ecs.EntityID]int, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		layers[id] = sprite.Layer
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return layers[ids[i]] < layers[ids[j]]
	})
	return ids
}

// spriteGeoM 计算贴图的绘制矩阵
//
// 贴图以中心为锚点，缩放到 size 个世界单位，
// 旋转角为实体朝向减去镜头旋转（屏幕坐标系顺时针为正，所以取反）。
func spriteGeoM(cam *components.CameraComponent, screenW, screenH float64,
	tr *components.TransformComponent, size float64, imgW, imgH int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(imgW)/2, -float64(imgH)/2)
	if imgW > 0 {
		scale := size * cam.Zoom / float64(imgW)
		g.Scale(scale, scale)
	}
	g.Rotate(-(tr.Rotation - cam.Roll))
	x, y := WorldToScreen(cam, screenW, screenH, tr.Position)
	g.Translate(x, y)
	return g
}
