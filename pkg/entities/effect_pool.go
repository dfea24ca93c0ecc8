package entities

import (
	"image/color"
	"log"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// 爆炸特效默认参数
const (
	ExplosionDuration = 0.5
)

// ExplosionColor 鱼雷爆炸的绿色
var ExplosionColor = color.RGBA{90, 255, 120, 255}

// EffectPool 爆炸特效对象池
//
// 特效实体在创建时全部隐藏，Spawn 取出并激活，播放结束后由
// ParticleSystem 调用 Release 放回。池耗尽时新建实体并扩容。
type EffectPool struct {
	em   *ecs.EntityManager
	ts   TextureSource
	free []ecs.EntityID
	size int
}

// NewEffectPool 创建并预热 size 个特效实体
func NewEffectPool(em *ecs.EntityManager, ts TextureSource, size int) *EffectPool {
	p := &EffectPool{em: em, ts: ts}
	for i := 0; i < size; i++ {
		p.free = append(p.free, p.create())
	}
	return p
}

// Size 池中实体总数（含已激活的）
func (p *EffectPool) Size() int {
	return p.size
}

// Available 可立即复用的实体数
func (p *EffectPool) Available() int {
	return len(p.free)
}

// Spawn 在 pos 处播放一次爆炸
func (p *EffectPool) Spawn(pos orbital.Vec2, maxRadius float64, c color.RGBA) ecs.EntityID {
	var id ecs.EntityID
	for len(p.free) > 0 {
		id = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		if p.em.Exists(id) && !p.em.IsMarkedForDestroy(id) {
			break
		}
		id = ecs.InvalidEntity
	}
	if id == ecs.InvalidEntity {
		id = p.create()
		log.Printf("[EffectPool] 对象池耗尽，扩容到 %d", p.size)
	}

	if tr, ok := ecs.GetComponent[*components.TransformComponent](p.em, id); ok {
		tr.Position = pos
	}
	if ex, ok := ecs.GetComponent[*components.ExplosionComponent](p.em, id); ok {
		ex.Active = true
		ex.Age = 0
		ex.Duration = ExplosionDuration
		ex.MaxRadius = maxRadius
		ex.Color = c
	}
	if sp, ok := ecs.GetComponent[*components.SpriteComponent](p.em, id); ok {
		sp.Hidden = false
		sp.Size = 0
		sp.Tint = c
	}
	return id
}

// Release 把特效放回池中
func (p *EffectPool) Release(id ecs.EntityID) {
	ex, ok := ecs.GetComponent[*components.ExplosionComponent](p.em, id)
	if !ok || !ex.Active {
		return
	}
	ex.Active = false
	if sp, ok := ecs.GetComponent[*components.SpriteComponent](p.em, id); ok {
		sp.Hidden = true
	}
	p.free = append(p.free, id)
}

func (p *EffectPool) create() ecs.EntityID {
	id := p.em.CreateEntity()
	p.em.AddComponent(id, &components.TransformComponent{})
	p.em.AddComponent(id, &components.ExplosionComponent{})
	p.em.AddComponent(id, &components.SpriteComponent{
		Image:  dotImage(p.ts),
		Layer:  components.LayerEffect,
		Hidden: true,
	})
	p.size++
	return id
}
