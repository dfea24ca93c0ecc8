package systems

import (
	"image/color"
	"log"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// 受击反馈
const (
	hitShakeDuration  = 0.5
	hitShakeMagnitude = 0.3
	hitShakeSpeed     = 3
	hitFlashDuration  = 0.1
)

var hitFlashColor = color.RGBA{255, 255, 255, 90}

// CollisionSystem 处理子弹和鱼雷的命中
//
// resolv 空间负责宽相位，精确判定按圆心距离完成：
//   - 子弹 vs 目标标签实体：对玩家/鱼雷造成伤害
//   - 子弹 vs 天体表面：home 行星损失少量完整度
//   - 鱼雷 vs 天体表面或玩家：爆炸，行星/玩家受损
//
// 飞出碰撞空间的子弹和鱼雷直接销毁。
type CollisionSystem struct {
	em     *ecs.EntityManager
	world  *game.WorldState
	cfg    config.CombatConfig
	space  *game.CollisionSpace
	pool   *entities.EffectPool
	camera *CameraSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, world *game.WorldState, cfg config.CombatConfig,
	space *game.CollisionSpace, pool *entities.EffectPool, camera *CameraSystem) *CollisionSystem {
	return &CollisionSystem{em: em, world: world, cfg: cfg, space: space, pool: pool, camera: camera}
}

// Update 检测本 tick 的命中
func (s *CollisionSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.ColliderComponent](s.em) {
		if alive(s.em, id) && !s.cullOutside(id) {
			s.checkProjectile(id)
		}
	}
	for _, id := range ecs.GetEntitiesWith2[*components.TorpedoComponent, *components.ColliderComponent](s.em) {
		if alive(s.em, id) && !s.cullOutside(id) {
			s.checkTorpedo(id)
		}
	}
}

func (s *CollisionSystem) cullOutside(id ecs.EntityID) bool {
	pos, ok := positionOf(s.em, id)
	if !ok || s.space.Contains(pos) {
		return false
	}
	s.em.DestroyEntity(id)
	return true
}

func (s *CollisionSystem) checkProjectile(id ecs.EntityID) {
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
	col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, id)
	pos, _ := positionOf(s.em, id)

	for _, other := range s.space.Nearby(col.Object, proj.TargetTag, components.TagCollidable) {
		if other == proj.Owner || other == id || !alive(s.em, other) {
			continue
		}

		if otherCol, ok := ecs.GetComponent[*components.ColliderComponent](s.em, other); ok && otherCol.Tag == proj.TargetTag {
			otherPos, _ := positionOf(s.em, other)
			if !circlesOverlap(pos, col.Radius, otherPos, otherCol.Radius) {
				continue
			}
			s.em.DestroyEntity(id)
			s.damageTarget(other, otherCol.Tag, proj.Damage)
			return
		}

		body, ok := ecs.GetComponent[*components.CelestialBodyComponent](s.em, other)
		if !ok {
			continue
		}
		center, _ := positionOf(s.em, other)
		if !circlesOverlap(pos, col.Radius, center, body.Scale) {
			continue
		}
		s.em.DestroyEntity(id)
		s.damagePlanet(other, s.cfg.PlanetProjectileDamage)
		return
	}
}

func (s *CollisionSystem) checkTorpedo(id ecs.EntityID) {
	col, _ := ecs.GetComponent[*components.ColliderComponent](s.em, id)
	pos, _ := positionOf(s.em, id)

	for _, other := range s.space.Nearby(col.Object, components.TagCollidable, components.TagPlayer) {
		if !alive(s.em, other) {
			continue
		}

		if body, ok := ecs.GetComponent[*components.CelestialBodyComponent](s.em, other); ok {
			center, _ := positionOf(s.em, other)
			if !circlesOverlap(pos, col.Radius, center, body.Scale) {
				continue
			}
			s.explode(id, pos)
			s.damagePlanet(other, s.cfg.PlanetTorpedoDamage)
			return
		}

		playerCol, ok := ecs.GetComponent[*components.ColliderComponent](s.em, other)
		if !ok || playerCol.Tag != components.TagPlayer {
			continue
		}
		playerPos, _ := positionOf(s.em, other)
		if !circlesOverlap(pos, col.Radius, playerPos, playerCol.Radius) {
			continue
		}
		s.explode(id, pos)
		s.damagePlayer(other, s.cfg.PlayerTorpedoDamage)
		return
	}
}

func (s *CollisionSystem) damageTarget(target ecs.EntityID, tag string, amount float64) {
	switch tag {
	case components.TagPlayer:
		s.damagePlayer(target, amount)
	case components.TagEnemy:
		health, ok := ecs.GetComponent[*components.HealthComponent](s.em, target)
		if !ok {
			return
		}
		health.Cell.Damage(amount)
		if health.Cell.IsEmpty() {
			pos, _ := positionOf(s.em, target)
			s.explode(target, pos)
			s.world.Kills++
			log.Printf("[Collision] 鱼雷 %d 被击落 (共 %d)", target, s.world.Kills)
		}
	}
}

func (s *CollisionSystem) damagePlayer(player ecs.EntityID, amount float64) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, player)
	if !ok {
		return
	}
	health.Cell.Damage(amount)
	s.world.PlayerHits++
	if s.camera != nil {
		s.camera.Shake(hitShakeDuration, hitShakeMagnitude, hitShakeSpeed)
		s.camera.Flash(hitFlashColor, hitFlashDuration)
	}
	log.Printf("[Collision] 玩家受到 %.3f 伤害，剩余 %d%%", amount, health.Cell.Percentage())
}

func (s *CollisionSystem) damagePlanet(planet ecs.EntityID, amount float64) {
	integrity, ok := ecs.GetComponent[*components.IntegrityComponent](s.em, planet)
	if !ok {
		return
	}
	integrity.Cell.Damage(amount)
	s.world.PlanetHits++
}

// explode 销毁实体并在其位置播放爆炸
func (s *CollisionSystem) explode(id ecs.EntityID, pos orbital.Vec2) {
	radius := 0.5
	if col, ok := ecs.GetComponent[*components.ColliderComponent](s.em, id); ok {
		radius = col.Radius * 4
	}
	s.em.DestroyEntity(id)
	if s.pool != nil {
		s.pool.Spawn(pos, radius, entities.ExplosionColor)
	}
}
