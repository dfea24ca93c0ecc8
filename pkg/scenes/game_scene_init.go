package scenes

import (
	"fmt"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
	"github.com/decker502/spacejusticiar/pkg/systems"
)

// collisionHalfExtent 碰撞空间覆盖 [-h, h]²，超出范围的物体不参与碰撞
const collisionHalfExtent = 400.0

// initWorld 加载配置，创建天体、玩家和镜头
func (s *GameScene) initWorld() error {
	sysCfg, err := config.LoadStarSystemConfig(s.deps.StarSystemPath)
	if err != nil {
		return fmt.Errorf("failed to load star system: %w", err)
	}
	cfg, err := config.LoadGameplayConfig(s.deps.GameplayPath)
	if err != nil {
		return fmt.Errorf("failed to load gameplay config: %w", err)
	}
	s.cfg = cfg

	s.entityManager = ecs.NewEntityManager()
	s.space = game.NewCollisionSpace(collisionHalfExtent)
	s.entityManager.OnDestroy(s.removeProxies)

	ts := s.textures()
	s.starSystem, err = entities.BuildStarSystem(s.entityManager, ts, s.space, sysCfg, cfg)
	if err != nil {
		return fmt.Errorf("failed to build star system: %w", err)
	}

	player, err := entities.NewPlayer(s.entityManager, ts, s.space, cfg, s.starSystem.Home)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	s.world = game.NewWorldState()
	s.world.Player = player
	s.world.HomePlanet = s.starSystem.Home
	s.world.ShowInfluenceBorders = s.deps.Settings.GetSettings().ShowInfluenceBorders

	pos := orbital.Vec2{}
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, player); ok {
		pos = tr.Position
	}
	home, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.starSystem.Home)
	roll := orbital.AlignmentAngle(orbital.Up(orbital.FramePlanet, pos, home.Position))
	s.world.Camera = entities.NewCamera(s.entityManager, cfg.Camera, pos, roll)

	s.effects = entities.NewEffectPool(s.entityManager, ts, cfg.Combat.ExplosionPool)
	return nil
}

// initSystems 按更新顺序创建系统
func (s *GameScene) initSystems() {
	em, world, cfg, ts := s.entityManager, s.world, s.cfg, s.textures()
	w, h := config.GameWindowWidth, config.GameWindowHeight

	s.inputSystem = systems.NewInputSystem(s.deps.Input)
	s.cameraSystem = systems.NewCameraSystem(em, world, w, h)
	s.inputSystem.Unproject = s.cameraSystem.Unproject

	s.controlSystem = systems.NewPlayerControlSystem(em, world, s.inputSystem.Intent(), cfg, s.space, ts, s.newRand(1))
	s.orbitSystem = systems.NewOrbitSystem(em, s.space)
	s.physicsSystem = systems.NewPhysicsSystem(em, s.space)
	s.influenceSystem = systems.NewInfluenceSystem(em, world, s.space, s.cameraSystem)
	s.launcherSystem = systems.NewLauncherSystem(em, world, cfg.Combat, s.space, ts, s.newRand(2))
	s.collisionSystem = systems.NewCollisionSystem(em, world, cfg.Combat, s.space, s.effects, s.cameraSystem)
	s.vitalsSystem = systems.NewVitalsSystem(em, world, cfg, s.effects)
	s.particleSystem = systems.NewParticleSystem(em, ts, s.effects, s.newRand(3))
	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	s.renderSystem = systems.NewRenderSystem(em, world, w, h)
	s.hudSystem = systems.NewHUDSystem(em, world, s.deps.Resources)
	s.hudSystem.BestSurvival = s.deps.Scores.Record().BestSurvival
}

// textures ResourceManager 为 nil 时返回 nil 接口，工厂函数据此跳过贴图
func (s *GameScene) textures() entities.TextureSource {
	if s.deps.Resources == nil {
		return nil
	}
	return s.deps.Resources
}

// removeProxies 实体删除时把它的碰撞代理移出空间
func (s *GameScene) removeProxies(id ecs.EntityID) {
	if col, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
		s.space.Remove(col.Object)
	}
	if zone, ok := ecs.GetComponent[*components.InfluenceZoneComponent](s.entityManager, id); ok {
		s.space.Remove(zone.Object)
	}
}
