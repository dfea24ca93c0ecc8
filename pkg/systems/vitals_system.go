package systems

import (
	"log"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
)

// 死亡爆炸半径
const (
	shipExplosionRadius   = 1.5
	planetExplosionRadius = 3.0
)

// VitalsSystem 生命/能量回复，以及玩家死亡和行星毁灭的判定
type VitalsSystem struct {
	em    *ecs.EntityManager
	world *game.WorldState
	cfg   *config.GameplayConfig
	pool  *entities.EffectPool
}

// NewVitalsSystem 创建生命体征系统
func NewVitalsSystem(em *ecs.EntityManager, world *game.WorldState, cfg *config.GameplayConfig, pool *entities.EffectPool) *VitalsSystem {
	return &VitalsSystem{em: em, world: world, cfg: cfg, pool: pool}
}

// Update dt 为已缩放的游戏时间
func (s *VitalsSystem) Update(dt float64) {
	if !s.world.IsOver() {
		s.world.SurvivalTime += dt
	}

	s.updatePlayer(dt)
	s.updateHomePlanet(dt)
}

func (s *VitalsSystem) updatePlayer(dt float64) {
	id := s.world.Player
	if id == ecs.InvalidEntity {
		return
	}

	// 死亡延迟结束，实体已被 LifetimeSystem 销毁
	if !alive(s.em, id) {
		s.world.EndGame(game.GameOverShipDestroyed)
		return
	}

	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok || pc.Dead {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return
	}

	if health.Cell.IsEmpty() {
		s.kill(id, pc)
		return
	}
	health.Cell.Regen(dt)

	if energy, ok := ecs.GetComponent[*components.EnergyComponent](s.em, id); ok && !pc.InSlowMotion {
		energy.Cell.Regen(dt)
	}
}

func (s *VitalsSystem) kill(id ecs.EntityID, pc *components.PlayerComponent) {
	pc.Dead = true
	s.em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: s.cfg.Player.DeathDelay})
	if emitter, ok := ecs.GetComponent[*components.ParticleEmitterComponent](s.em, id); ok {
		emitter.Playing = false
	}

	pos, _ := positionOf(s.em, id)
	if s.pool != nil {
		s.pool.Spawn(pos, shipExplosionRadius, entities.ExplosionColor)
	}
	log.Printf("[Vitals] 玩家飞船被摧毁，%.2f 秒后移除", s.cfg.Player.DeathDelay)
}

func (s *VitalsSystem) updateHomePlanet(dt float64) {
	id := s.world.HomePlanet
	integrity, ok := ecs.GetComponent[*components.IntegrityComponent](s.em, id)
	if !ok {
		return
	}

	if integrity.Cell.IsEmpty() {
		if s.world.EndGame(game.GameOverPlanetDestroyed) && s.pool != nil {
			pos, _ := positionOf(s.em, id)
			s.pool.Spawn(pos, planetExplosionRadius, entities.ExplosionColor)
		}
		return
	}
	integrity.Cell.Regen(dt)
}
