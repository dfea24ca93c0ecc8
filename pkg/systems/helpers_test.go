package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

const testDT = 1.0 / 60.0

// testWorld 系统测试用的小型世界：
// 恒星 Sun(原点, 半径10) + 静止的 home 行星 Home((50,0), 半径4) + 静止的 Far((-100,0), 半径3)
type testWorld struct {
	em     *ecs.EntityManager
	space  *game.CollisionSpace
	world  *game.WorldState
	cfg    *config.GameplayConfig
	sys    *entities.StarSystem
	intent *PlayerIntent
	pool   *entities.EffectPool
	camera *CameraSystem
}

func testSystemConfig() *config.StarSystemConfig {
	return &config.StarSystemConfig{
		Name: "Test",
		Bodies: []config.BodyConfig{
			{Name: "Sun", Kind: config.BodyStar, Scale: 10, Color: "#ffcc33"},
			{Name: "Home", Kind: config.BodyPlanet, Parent: "Sun", Scale: 4, OrbitRadius: 50, Color: "#3a7bd5", Home: true},
			{Name: "Far", Kind: config.BodyPlanet, Parent: "Sun", Scale: 3, OrbitRadius: 100, OrbitAngle: math.Pi, Color: "#c1440e"},
		},
	}
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	em := ecs.NewEntityManager()
	space := game.NewCollisionSpace(300)
	cfg := config.DefaultGameplayConfig()

	sys, err := entities.BuildStarSystem(em, nil, space, testSystemConfig(), cfg)
	if err != nil {
		t.Fatalf("BuildStarSystem() error: %v", err)
	}
	player, err := entities.NewPlayer(em, nil, space, cfg, sys.Home)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	world := game.NewWorldState()
	world.Player = player
	world.HomePlanet = sys.Home
	pos, _ := positionOf(em, player)
	world.Camera = entities.NewCamera(em, cfg.Camera, pos, 0)

	tw := &testWorld{
		em:     em,
		space:  space,
		world:  world,
		cfg:    cfg,
		sys:    sys,
		intent: &PlayerIntent{},
		pool:   entities.NewEffectPool(em, nil, 4),
	}
	tw.camera = NewCameraSystem(em, world, config.GameWindowWidth, config.GameWindowHeight)
	return tw
}

func (tw *testWorld) rng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func (tw *testWorld) player() *components.PlayerComponent {
	pc, _ := ecs.GetComponent[*components.PlayerComponent](tw.em, tw.world.Player)
	return pc
}

func (tw *testWorld) playerTransform() *components.TransformComponent {
	tr, _ := ecs.GetComponent[*components.TransformComponent](tw.em, tw.world.Player)
	return tr
}

func (tw *testWorld) playerBody() *components.RigidBodyComponent {
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](tw.em, tw.world.Player)
	return rb
}

func (tw *testWorld) health() *orbital.Cell {
	h, _ := ecs.GetComponent[*components.HealthComponent](tw.em, tw.world.Player)
	return &h.Cell
}

func (tw *testWorld) integrity() *orbital.Cell {
	c, _ := ecs.GetComponent[*components.IntegrityComponent](tw.em, tw.world.HomePlanet)
	return &c.Cell
}

func (tw *testWorld) cameraComp() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](tw.em, tw.world.Camera)
	return cam
}

// movePlayer 把玩家放到指定位置并同步碰撞代理
func (tw *testWorld) movePlayer(pos orbital.Vec2) {
	tw.playerTransform().Position = pos
	col, _ := ecs.GetComponent[*components.ColliderComponent](tw.em, tw.world.Player)
	tw.space.Move(col.Object, pos, col.Radius)
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func countWith[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if !em.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}
