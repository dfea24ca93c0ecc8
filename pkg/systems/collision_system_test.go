package systems

import (
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

func newCollision(tw *testWorld) *CollisionSystem {
	return NewCollisionSystem(tw.em, tw.world, tw.cfg.Combat, tw.space, tw.pool, tw.camera)
}

func activeExplosions(tw *testWorld) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](tw.em) {
		ex, _ := ecs.GetComponent[*components.ExplosionComponent](tw.em, id)
		if ex.Active {
			n++
		}
	}
	return n
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	pos := tw.playerTransform().Position

	shot := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat, pos, orbital.GlobalUp,
		ecs.InvalidEntity, components.TagPlayer)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(shot) {
		t.Error("projectile should be consumed by the hit")
	}
	if got := tw.health().Value; !approx(got, 1-tw.cfg.Combat.ProjectileDamage, 1e-9) {
		t.Errorf("health = %v, want %v", got, 1-tw.cfg.Combat.ProjectileDamage)
	}
	if tw.world.PlayerHits != 1 {
		t.Errorf("PlayerHits = %d, want 1", tw.world.PlayerHits)
	}
	cam := tw.cameraComp()
	if cam.ShakeDuration != hitShakeDuration || cam.FlashRemaining != hitFlashDuration {
		t.Errorf("hit feedback not triggered: shake %v flash %v", cam.ShakeDuration, cam.FlashRemaining)
	}
}

func TestProjectileIgnoresOwnerAndOtherTags(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	pos := tw.playerTransform().Position

	// 玩家自己的子弹只打敌人
	own := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat, pos, orbital.GlobalUp,
		tw.world.Player, components.TagEnemy)
	cs.Update(testDT)

	if tw.em.IsMarkedForDestroy(own) {
		t.Error("player projectile should pass through the player")
	}
	if tw.health().Value != 1 {
		t.Errorf("health = %v, want 1", tw.health().Value)
	}
}

func TestProjectileShootsDownTorpedo(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	pos := orbital.Vec2{X: 0, Y: 100}

	torp := entities.NewTorpedo(tw.em, nil, tw.space, tw.cfg.Combat, pos, orbital.GlobalUp.Neg(), tw.world.HomePlanet)
	shot := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat, pos, orbital.GlobalUp,
		tw.world.Player, components.TagEnemy)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(shot) || !tw.em.IsMarkedForDestroy(torp) {
		t.Fatal("projectile and torpedo should both be destroyed")
	}
	if tw.world.Kills != 1 {
		t.Errorf("Kills = %d, want 1", tw.world.Kills)
	}
	if n := activeExplosions(tw); n != 1 {
		t.Errorf("active explosions = %d, want 1", n)
	}
}

func TestTorpedoHitsPlanet(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	home, _ := positionOf(tw.em, tw.world.HomePlanet)
	tw.movePlayer(home.Add(orbital.Vec2{Y: -5}))

	torp := entities.NewTorpedo(tw.em, nil, tw.space, tw.cfg.Combat,
		home.Add(orbital.Vec2{Y: 4.1}), orbital.GlobalUp.Neg(), tw.world.HomePlanet)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(torp) {
		t.Fatal("torpedo should explode on the planet surface")
	}
	if got := tw.integrity().Value; !approx(got, 1-tw.cfg.Combat.PlanetTorpedoDamage, 1e-9) {
		t.Errorf("integrity = %v, want %v", got, 1-tw.cfg.Combat.PlanetTorpedoDamage)
	}
	if tw.world.PlanetHits != 1 {
		t.Errorf("PlanetHits = %d, want 1", tw.world.PlanetHits)
	}
	if n := activeExplosions(tw); n != 1 {
		t.Errorf("active explosions = %d, want 1", n)
	}
}

func TestProjectileChipsPlanet(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	home, _ := positionOf(tw.em, tw.world.HomePlanet)

	shot := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat,
		home.Add(orbital.Vec2{X: 3.9}), orbital.GlobalUp, tw.world.Player, components.TagEnemy)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(shot) {
		t.Fatal("projectile should stop at the planet surface")
	}
	if got := tw.integrity().Value; !approx(got, 1-tw.cfg.Combat.PlanetProjectileDamage, 1e-9) {
		t.Errorf("integrity = %v, want %v", got, 1-tw.cfg.Combat.PlanetProjectileDamage)
	}
}

func TestTorpedoRamsPlayer(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	pos := tw.playerTransform().Position

	torp := entities.NewTorpedo(tw.em, nil, tw.space, tw.cfg.Combat, pos, orbital.GlobalUp.Neg(), tw.world.HomePlanet)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(torp) {
		t.Fatal("torpedo should explode on the player")
	}
	if got := tw.health().Value; !approx(got, 1-tw.cfg.Combat.PlayerTorpedoDamage, 1e-9) {
		t.Errorf("health = %v, want %v", got, 1-tw.cfg.Combat.PlayerTorpedoDamage)
	}
	if tw.integrity().Value != 1 {
		t.Errorf("integrity = %v, want 1", tw.integrity().Value)
	}
}

func TestCollisionCullsShotsOutsideSpace(t *testing.T) {
	tw := newTestWorld(t)
	cs := newCollision(tw)
	outside := orbital.Vec2{X: 0, Y: 400}

	torp := entities.NewTorpedo(tw.em, nil, tw.space, tw.cfg.Combat, outside, orbital.GlobalUp.Neg(), tw.world.HomePlanet)
	shot := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat, outside, orbital.GlobalUp,
		tw.world.Player, components.TagEnemy)
	inside := entities.NewProjectile(tw.em, nil, tw.space, tw.cfg.Combat, orbital.Vec2{X: 0, Y: 200}, orbital.GlobalUp,
		tw.world.Player, components.TagEnemy)
	cs.Update(testDT)

	if !tw.em.IsMarkedForDestroy(torp) || !tw.em.IsMarkedForDestroy(shot) {
		t.Error("torpedo and projectile outside the collision space should be destroyed")
	}
	if tw.em.IsMarkedForDestroy(inside) {
		t.Error("projectile inside the collision space should survive")
	}
	if tw.world.Kills != 0 || activeExplosions(tw) != 0 {
		t.Errorf("culling is not a kill: kills %d, explosions %d", tw.world.Kills, activeExplosions(tw))
	}
}
