package systems

import (
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	tests := []struct {
		name        string
		maxLifetime float64
		steps       []float64
		wantExpired bool
	}{
		{"still alive", 10, []float64{5}, false},
		{"expires exactly", 2, []float64{1, 1}, true},
		{"frozen time", 0.1, []float64{0, 0, 0}, false},
		{"overshoot", 0.1, []float64{1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewLifetimeSystem(em)

			id := em.CreateEntity()
			em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: tt.maxLifetime})

			total := 0.0
			for _, dt := range tt.steps {
				system.Update(dt)
				total += dt
			}

			lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
			if !approx(lifetime.CurrentLifetime, total, 1e-9) {
				t.Errorf("CurrentLifetime = %v, want %v", lifetime.CurrentLifetime, total)
			}
			if lifetime.IsExpired != tt.wantExpired {
				t.Errorf("IsExpired = %v, want %v", lifetime.IsExpired, tt.wantExpired)
			}
			if em.IsMarkedForDestroy(id) != tt.wantExpired {
				t.Errorf("IsMarkedForDestroy = %v, want %v", em.IsMarkedForDestroy(id), tt.wantExpired)
			}
		})
	}
}

func TestLifetimeRemovesEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1})

	system.Update(1.5)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("expired entity should be removed")
	}
}
