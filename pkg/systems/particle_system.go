package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/utils"
)

// maxParticlesPerTick 单个发射器每 tick 最多生成的粒子数
const maxParticlesPerTick = 8

// ParticleSystem 更新尾焰粒子和对象池中的爆炸特效
type ParticleSystem struct {
	em       *ecs.EntityManager
	textures entities.TextureSource
	pool     *entities.EffectPool
	rng      *rand.Rand
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, ts entities.TextureSource, pool *entities.EffectPool, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{em: em, textures: ts, pool: pool, rng: rng}
}

// Update dt 为已缩放的游戏时间
func (s *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.emit(dt)
	s.updateParticles(dt)
	s.updateExplosions(dt)
}

func (s *ParticleSystem) emit(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleEmitterComponent, *components.TransformComponent](s.em) {
		emitter, _ := ecs.GetComponent[*components.ParticleEmitterComponent](s.em, id)
		if !emitter.Playing || emitter.Direction.IsZero() {
			emitter.Accumulator = 0
			continue
		}
		pos, _ := positionOf(s.em, id)

		emitter.Accumulator += emitter.Rate * dt
		n := int(emitter.Accumulator)
		emitter.Accumulator -= float64(n)
		if n > maxParticlesPerTick {
			n = maxParticlesPerTick
		}

		back := emitter.Direction.Neg().Normalized()
		for i := 0; i < n; i++ {
			spread := (s.rng.Float64()*2 - 1) * emitter.Spread
			vel := back.Rotate(spread).Scale(emitter.Speed * (0.7 + 0.3*s.rng.Float64()))
			entities.NewParticle(s.em, s.textures, pos, vel, emitter.Lifetime, emitter.Size, emitter.Color)
		}
	}
}

func (s *ParticleSystem) updateParticles(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](s.em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)

		p.Age += dt
		if p.Lifetime <= 0 || p.Age >= p.Lifetime {
			s.em.DestroyEntity(id)
			continue
		}
		tr.Position = tr.Position.Add(p.Velocity.Scale(dt))

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			fade := 1 - utils.EaseInQuad(p.Age/p.Lifetime)
			sprite.Tint.A = uint8(math.Round(float64(p.Color.A) * fade))
			sprite.Size = p.Size * (0.5 + 0.5*fade)
		}
	}
}

func (s *ParticleSystem) updateExplosions(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.em) {
		ex, _ := ecs.GetComponent[*components.ExplosionComponent](s.em, id)
		if !ex.Active {
			continue
		}
		ex.Age += dt
		if ex.Duration <= 0 || ex.Age >= ex.Duration {
			if s.pool != nil {
				s.pool.Release(id)
			} else {
				ex.Active = false
			}
			continue
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			t := ex.Age / ex.Duration
			sprite.Size = utils.EaseOutCubic(t) * ex.MaxRadius * 2
			sprite.Tint.A = utils.LerpUint8(ex.Color.A, 0, utils.EaseInQuad(t))
		}
	}
}
