package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

func TestParticleEmitterSpawnsBehindShip(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewParticleSystem(tw.em, nil, tw.pool, tw.rng())

	emitter, _ := ecs.GetComponent[*components.ParticleEmitterComponent](tw.em, tw.world.Player)
	emitter.Playing = true
	emitter.Direction = orbital.GlobalUp

	// 0.2 秒 × 60/秒 = 12 个，受单 tick 上限约束
	ps.Update(0.2)

	ids := ecs.GetEntitiesWith1[*components.ParticleComponent](tw.em)
	if len(ids) != maxParticlesPerTick {
		t.Fatalf("particles = %d, want %d", len(ids), maxParticlesPerTick)
	}
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](tw.em, id)
		if p.Velocity.Dot(emitter.Direction) >= 0 {
			t.Errorf("particle %d velocity %v should point away from thrust", id, p.Velocity)
		}
	}
}

func TestParticleEmitterIdle(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewParticleSystem(tw.em, nil, tw.pool, tw.rng())

	emitter, _ := ecs.GetComponent[*components.ParticleEmitterComponent](tw.em, tw.world.Player)
	emitter.Playing = false
	emitter.Direction = orbital.GlobalUp
	ps.Update(0.5)

	if n := countWith[*components.ParticleComponent](tw.em); n != 0 {
		t.Errorf("idle emitter spawned %d particles", n)
	}
}

func TestParticleMovesFadesAndExpires(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewParticleSystem(tw.em, nil, tw.pool, tw.rng())

	c := color.RGBA{255, 160, 40, 255}
	id := entities.NewParticle(tw.em, nil, orbital.Vec2{}, orbital.Vec2{X: 2}, 0.1, 0.2, c)

	ps.Update(0.05)
	tr, _ := ecs.GetComponent[*components.TransformComponent](tw.em, id)
	if !approx(tr.Position.X, 0.1, 1e-9) {
		t.Errorf("particle x = %v, want 0.1", tr.Position.X)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](tw.em, id)
	if sprite.Tint.A >= c.A {
		t.Errorf("particle alpha = %d, should fade", sprite.Tint.A)
	}

	ps.Update(0.06)
	if !tw.em.IsMarkedForDestroy(id) {
		t.Error("particle should be destroyed after its lifetime")
	}
}

func TestExplosionGrowsAndReturnsToPool(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewParticleSystem(tw.em, nil, tw.pool, tw.rng())

	id := tw.pool.Spawn(orbital.Vec2{X: 3}, 1, entities.ExplosionColor)
	if tw.pool.Available() != 3 {
		t.Fatalf("Available = %d, want 3", tw.pool.Available())
	}

	ps.Update(entities.ExplosionDuration / 2)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](tw.em, id)
	if sprite.Size <= 0 || sprite.Size > 2 {
		t.Errorf("explosion size = %v, want in (0, 2]", sprite.Size)
	}
	if sprite.Tint.A == 0 || sprite.Tint.A >= 255 {
		t.Errorf("explosion alpha = %d, want partially faded", sprite.Tint.A)
	}

	ps.Update(entities.ExplosionDuration)
	ex, _ := ecs.GetComponent[*components.ExplosionComponent](tw.em, id)
	if ex.Active || !sprite.Hidden {
		t.Error("finished explosion should be hidden and inactive")
	}
	if tw.pool.Available() != 4 {
		t.Errorf("Available = %d, want 4", tw.pool.Available())
	}
}
