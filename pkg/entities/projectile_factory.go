package entities

import (
	"image/color"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// 子弹颜色：玩家射出的黄色，敌方红色
var (
	playerShotColor = color.RGBA{255, 240, 120, 255}
	enemyShotColor  = color.RGBA{255, 70, 70, 255}
)

// 鱼雷贴图尺寸相对碰撞半径的倍数
const torpedoSpriteScale = 4

// NewProjectile 创建子弹
//
// 参数:
//   - dir: 飞行方向，零向量时子弹静止直到过期
//   - targetTag: 只对带此标签的实体造成伤害（components.TagEnemy / TagPlayer）
func NewProjectile(em *ecs.EntityManager, ts TextureSource, space *game.CollisionSpace,
	cc config.CombatConfig, pos, dir orbital.Vec2, owner ecs.EntityID, targetTag string) ecs.EntityID {
	id := em.CreateEntity()

	vel := dir.Normalized().Scale(cc.ProjectileSpeed)
	em.AddComponent(id, &components.TransformComponent{
		Position: pos,
		Rotation: orbital.AlignmentAngle(vel),
	})
	em.AddComponent(id, &components.RigidBodyComponent{Velocity: vel, Mass: 1})
	em.AddComponent(id, &components.ProjectileComponent{
		Damage:    cc.ProjectileDamage,
		TargetTag: targetTag,
		Owner:     owner,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: cc.ProjectileLifetime})
	em.AddComponent(id, &components.ColliderComponent{
		Radius: cc.ProjectileRadius,
		Tag:    components.TagProjectile,
		Object: space.Add(id, pos, cc.ProjectileRadius, components.TagProjectile),
	})

	tint := playerShotColor
	if targetTag == components.TagPlayer {
		tint = enemyShotColor
	}
	em.AddComponent(id, &components.SpriteComponent{
		Image: dotImage(ts),
		Size:  cc.ProjectileRadius * 3,
		Tint:  tint,
		Layer: components.LayerProjectile,
	})
	return id
}

// NewTorpedo 创建鱼雷，沿 heading 匀速飞行，弹头朝向飞行方向
func NewTorpedo(em *ecs.EntityManager, ts TextureSource, space *game.CollisionSpace,
	cc config.CombatConfig, pos, heading orbital.Vec2, target ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()

	vel := heading.Normalized().Scale(cc.TorpedoSpeed)
	em.AddComponent(id, &components.TransformComponent{
		Position: pos,
		Rotation: orbital.AlignmentAngle(vel),
	})
	em.AddComponent(id, &components.RigidBodyComponent{Velocity: vel, Mass: 1})
	em.AddComponent(id, &components.TorpedoComponent{Target: target})
	em.AddComponent(id, &components.HealthComponent{Cell: orbital.NewCell(cc.TorpedoHealth, 0)})
	em.AddComponent(id, &components.ColliderComponent{
		Radius: cc.TorpedoRadius,
		Tag:    components.TagEnemy,
		Object: space.Add(id, pos, cc.TorpedoRadius, components.TagEnemy),
	})

	sprite := &components.SpriteComponent{
		Size:  cc.TorpedoRadius * torpedoSpriteScale,
		Tint:  color.RGBA{255, 255, 255, 255},
		Layer: components.LayerProjectile,
	}
	if ts != nil {
		sprite.Image = ts.TorpedoImage()
	}
	em.AddComponent(id, sprite)
	return id
}

// NewParticle 创建尾焰粒子
func NewParticle(em *ecs.EntityManager, ts TextureSource, pos, vel orbital.Vec2,
	lifetime, size float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.ParticleComponent{
		Velocity: vel,
		Lifetime: lifetime,
		Size:     size,
		Color:    c,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image: dotImage(ts),
		Size:  size,
		Tint:  c,
		Layer: components.LayerEffect,
	})
	return id
}
