package systems

import (
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
)

func TestLauncherFiresTorpedoAtHome(t *testing.T) {
	tw := newTestWorld(t)
	cfg := tw.cfg.Combat
	cfg.EnemyFireChance = 0
	ls := NewLauncherSystem(tw.em, tw.world, cfg, tw.space, nil, tw.rng())

	ls.Update(cfg.LauncherPeriod / 2)
	if n := countWith[*components.TorpedoComponent](tw.em); n != 0 {
		t.Fatalf("torpedoes before first period = %d, want 0", n)
	}

	ls.Update(cfg.LauncherPeriod / 2)
	torpedoes := ecs.GetEntitiesWith1[*components.TorpedoComponent](tw.em)
	if len(torpedoes) != 1 {
		t.Fatalf("torpedoes = %d, want 1", len(torpedoes))
	}
	if tw.world.Launched != 1 {
		t.Errorf("Launched = %d, want 1", tw.world.Launched)
	}

	id := torpedoes[0]
	torp, _ := ecs.GetComponent[*components.TorpedoComponent](tw.em, id)
	if torp.Target != tw.world.HomePlanet {
		t.Errorf("torpedo target = %d, want home %d", torp.Target, tw.world.HomePlanet)
	}

	home, _ := positionOf(tw.em, tw.world.HomePlanet)
	pos, _ := positionOf(tw.em, id)
	wantDist := 4 * cfg.LauncherDistance
	if d := pos.Sub(home).Len(); !approx(d, wantDist, 1e-9) {
		t.Errorf("spawn distance = %v, want %v", d, wantDist)
	}

	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](tw.em, id)
	toCenter := home.Sub(pos).Normalized()
	if !approx(rb.Velocity.Normalized().Dot(toCenter), 1, 1e-9) {
		t.Errorf("torpedo velocity %v does not point at the planet", rb.Velocity)
	}
	if !approx(rb.Velocity.Len(), cfg.TorpedoSpeed, 1e-9) {
		t.Errorf("torpedo speed = %v, want %v", rb.Velocity.Len(), cfg.TorpedoSpeed)
	}
}

func TestLauncherCatchesUpOnLongFrames(t *testing.T) {
	tw := newTestWorld(t)
	cfg := tw.cfg.Combat
	cfg.EnemyFireChance = 0
	ls := NewLauncherSystem(tw.em, tw.world, cfg, tw.space, nil, tw.rng())

	ls.Update(cfg.LauncherPeriod*3 + 0.1)
	if tw.world.Launched != 3 {
		t.Errorf("Launched = %d, want 3", tw.world.Launched)
	}
}

func TestLauncherEnemyFire(t *testing.T) {
	tw := newTestWorld(t)
	cfg := tw.cfg.Combat
	cfg.EnemyFireChance = 1
	ls := NewLauncherSystem(tw.em, tw.world, cfg, tw.space, nil, tw.rng())

	ls.Update(cfg.LauncherPeriod)

	shots := ecs.GetEntitiesWith1[*components.ProjectileComponent](tw.em)
	if len(shots) != 1 {
		t.Fatalf("enemy shots = %d, want 1", len(shots))
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](tw.em, shots[0])
	if proj.TargetTag != components.TagPlayer {
		t.Errorf("TargetTag = %q, want %q", proj.TargetTag, components.TagPlayer)
	}

	from, _ := positionOf(tw.em, shots[0])
	player, _ := positionOf(tw.em, tw.world.Player)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](tw.em, shots[0])
	if !approx(rb.Velocity.Normalized().Dot(player.Sub(from).Normalized()), 1, 1e-9) {
		t.Errorf("enemy shot does not aim at the player")
	}
}

func TestLauncherStopsWhenGameOver(t *testing.T) {
	tw := newTestWorld(t)
	ls := NewLauncherSystem(tw.em, tw.world, tw.cfg.Combat, tw.space, nil, tw.rng())

	tw.world.EndGame(game.GameOverShipDestroyed)
	ls.Update(tw.cfg.Combat.LauncherPeriod * 2)

	if tw.world.Launched != 0 {
		t.Errorf("Launched = %d after game over, want 0", tw.world.Launched)
	}
}
