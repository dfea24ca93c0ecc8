package entities

import (
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

func TestEffectPoolReuse(t *testing.T) {
	em := ecs.NewEntityManager()
	pool := NewEffectPool(em, nil, 2)

	if pool.Size() != 2 || pool.Available() != 2 {
		t.Fatalf("size=%d available=%d, want 2 and 2", pool.Size(), pool.Available())
	}

	a := pool.Spawn(orbital.Vec2{X: 3, Y: 4}, 1, ExplosionColor)
	ex, _ := ecs.GetComponent[*components.ExplosionComponent](em, a)
	if !ex.Active || ex.Duration != ExplosionDuration {
		t.Errorf("spawned explosion = %+v", ex)
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, a)
	if tr.Position != (orbital.Vec2{X: 3, Y: 4}) {
		t.Errorf("position = %v, want (3, 4)", tr.Position)
	}
	sp, _ := ecs.GetComponent[*components.SpriteComponent](em, a)
	if sp.Hidden {
		t.Error("active explosion should be visible")
	}

	pool.Release(a)
	pool.Release(a) // 重复释放被忽略
	if pool.Available() != 2 {
		t.Errorf("available after release = %d, want 2", pool.Available())
	}
	if !sp.Hidden {
		t.Error("released explosion should be hidden")
	}

	b := pool.Spawn(orbital.Vec2{}, 1, ExplosionColor)
	if b != a {
		t.Errorf("Spawn should reuse the released entity %d, got %d", a, b)
	}
}

func TestEffectPoolGrows(t *testing.T) {
	em := ecs.NewEntityManager()
	pool := NewEffectPool(em, nil, 1)

	pool.Spawn(orbital.Vec2{}, 1, ExplosionColor)
	pool.Spawn(orbital.Vec2{}, 1, ExplosionColor)

	if pool.Size() != 2 {
		t.Errorf("pool size = %d, want 2 after growing", pool.Size())
	}
	if pool.Available() != 0 {
		t.Errorf("available = %d, want 0", pool.Available())
	}
}
