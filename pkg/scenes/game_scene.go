package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/systems"
	"github.com/decker502/spacejusticiar/pkg/telemetry"
	"github.com/decker502/spacejusticiar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SnapshotPublisher 接收每个 tick 的状态快照（telemetry.Server 实现）
type SnapshotPublisher interface {
	Publish(s telemetry.Snapshot)
}

// GameSceneDeps 创建 GameScene 所需的依赖
type GameSceneDeps struct {
	// Resources 贴图和字体，为 nil 时不绘制贴图和 HUD（测试用）
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Settings  *game.SettingsManager
	Scores    *game.ScoreManager
	Input     utils.InputSource
	// Telemetry 可为 nil
	Telemetry SnapshotPublisher

	StarSystemPath string
	GameplayPath   string

	// Seed 随机种子，0 时按局数派生
	Seed int64
}

// 默认配置文件路径
const (
	DefaultStarSystemPath = "data/star_system.yaml"
	DefaultGameplayPath   = "data/gameplay.yaml"
)

// GameScene 一局游戏
//
// 持有本局的 ECS 世界和全部系统，重新开始时整个场景由 SceneManager 重建。
// Update 中的系统顺序固定：输入、玩家控制（决定时间缩放）、轨道、物理、
// 影响区、镜头、发射器、碰撞、生命体征、粒子、生命周期、延迟删除。
type GameScene struct {
	deps GameSceneDeps

	entityManager *ecs.EntityManager
	space         *game.CollisionSpace
	world         *game.WorldState
	cfg           *config.GameplayConfig
	starSystem    *entities.StarSystem
	effects       *entities.EffectPool

	inputSystem     *systems.InputSystem
	controlSystem   *systems.PlayerControlSystem
	orbitSystem     *systems.OrbitSystem
	physicsSystem   *systems.PhysicsSystem
	influenceSystem *systems.InfluenceSystem
	cameraSystem    *systems.CameraSystem
	launcherSystem  *systems.LauncherSystem
	collisionSystem *systems.CollisionSystem
	vitalsSystem    *systems.VitalsSystem
	particleSystem  *systems.ParticleSystem
	lifetimeSystem  *systems.LifetimeSystem
	renderSystem    *systems.RenderSystem
	hudSystem       *systems.HUDSystem

	gameNumber int
	tick       uint64
	submitted  bool
}

// NewGameScene 加载配置并创建一局新游戏
func NewGameScene(deps GameSceneDeps) (*GameScene, error) {
	if deps.Input == nil {
		return nil, fmt.Errorf("game scene requires an input source")
	}
	if deps.StarSystemPath == "" {
		deps.StarSystemPath = DefaultStarSystemPath
	}
	if deps.GameplayPath == "" {
		deps.GameplayPath = DefaultGameplayPath
	}
	if deps.Settings == nil {
		deps.Settings = game.NewSettingsManager(nil)
	}
	if deps.Scores == nil {
		deps.Scores = game.NewScoreManager(nil)
	}

	s := &GameScene{
		deps:       deps,
		gameNumber: deps.Scores.Record().Games + 1,
	}
	if err := s.initWorld(); err != nil {
		return nil, err
	}
	s.initSystems()

	log.Printf("[GameScene] 第 %d 局开始: %d 个天体, home = %s",
		s.gameNumber, len(s.starSystem.Order), s.homeName())
	return s, nil
}

// Update 推进一个 tick，deltaTime 为真实时间
func (s *GameScene) Update(deltaTime float64) {
	s.tick++
	s.inputSystem.Update(deltaTime)
	intent := s.inputSystem.Intent()

	if intent.ToggleBorders {
		s.world.ShowInfluenceBorders = s.deps.Settings.ToggleInfluenceBorders()
	}
	if intent.Restart && s.world.IsOver() && s.deps.Scenes != nil {
		log.Printf("[GameScene] 重新开始")
		s.deps.Scenes.RequestReload()
	}

	// 玩家控制使用真实时间，并决定本帧的时间缩放
	s.controlSystem.Update(deltaTime)
	dt := s.world.ScaledDelta(deltaTime)

	s.orbitSystem.Update(dt)
	s.physicsSystem.Update(dt)
	s.influenceSystem.Update(dt)
	s.cameraSystem.Update(deltaTime)
	s.launcherSystem.Update(dt)
	s.collisionSystem.Update(dt)
	s.vitalsSystem.Update(dt)
	s.particleSystem.Update(dt)
	s.lifetimeSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()

	if s.world.IsOver() && !s.submitted {
		s.submitScore()
	}
	if s.deps.Telemetry != nil {
		s.deps.Telemetry.Publish(s.Snapshot())
	}
}

// Draw 绘制世界和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)
}

// SaveOnExit 程序退出时保存设置，并把进行中的一局计入成绩
func (s *GameScene) SaveOnExit() bool {
	if !s.submitted && s.world.SurvivalTime > 0 {
		s.submitScore()
	}
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[GameScene] 保存设置失败: %v", err)
		return false
	}
	return true
}

// World 返回本局状态（测试和调试用）
func (s *GameScene) World() *game.WorldState {
	return s.world
}

// EntityManager 返回本局的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

func (s *GameScene) submitScore() {
	s.submitted = true
	s.world.NewBest = s.deps.Scores.Submit(s.world.SurvivalTime, s.world.Kills)
	if s.world.NewBest {
		log.Printf("[GameScene] 新纪录: 存活 %.1f 秒", s.world.SurvivalTime)
	}
}

// Snapshot 汇总当前状态
func (s *GameScene) Snapshot() telemetry.Snapshot {
	st := s.hudSystem.Status()
	snap := telemetry.Snapshot{
		Tick:          s.tick,
		Game:          s.gameNumber,
		SurvivalTime:  s.world.SurvivalTime,
		BestSurvival:  s.hudSystem.BestSurvival,
		TimeScale:     s.world.TimeScale,
		Health:        st.HealthFraction,
		Energy:        st.EnergyFraction,
		Planet:        st.PlanetFraction,
		Frame:         st.Frame.String(),
		Kills:         s.world.Kills,
		Launched:      s.world.Launched,
		FrameSwitches: s.world.FrameSwitches,
		PlayerHits:    s.world.PlayerHits,
		PlanetHits:    s.world.PlanetHits,
		Entities:      s.entityManager.EntityCount(),
		GameOver:      s.world.Over.Banner(),
	}

	em := s.entityManager
	if tr, ok := ecs.GetComponent[*components.TransformComponent](em, s.world.Player); ok {
		snap.PlayerX, snap.PlayerY = tr.Position.X, tr.Position.Y
	}
	if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](em, s.world.Player); ok {
		snap.Speed = rb.Velocity.Len()
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, s.world.Player); ok {
		if body, ok := ecs.GetComponent[*components.CelestialBodyComponent](em, pc.Planet); ok {
			snap.CurrentBody = body.Name
		}
	}
	return snap
}

func (s *GameScene) homeName() string {
	if body, ok := ecs.GetComponent[*components.CelestialBodyComponent](s.entityManager, s.world.HomePlanet); ok {
		return body.Name
	}
	return "?"
}

func (s *GameScene) newRand(salt int64) *rand.Rand {
	seed := s.deps.Seed
	if seed == 0 {
		seed = int64(s.gameNumber)*7919 + 1
	}
	return rand.New(rand.NewSource(seed + salt))
}
