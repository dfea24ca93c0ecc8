package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// LauncherSystem 周期性地向 home 行星发射鱼雷
//
// 鱼雷出生在行星周围 scale×LauncherDistance 处的随机方位，
// 沿该点的"下"方向（指向行星中心）飞行。
// 每次发射有 EnemyFireChance 的概率再向玩家射出一发子弹。
type LauncherSystem struct {
	em       *ecs.EntityManager
	world    *game.WorldState
	cfg      config.CombatConfig
	space    *game.CollisionSpace
	textures entities.TextureSource
	rng      *rand.Rand
}

// NewLauncherSystem 创建发射系统
func NewLauncherSystem(em *ecs.EntityManager, world *game.WorldState, cfg config.CombatConfig,
	space *game.CollisionSpace, ts entities.TextureSource, rng *rand.Rand) *LauncherSystem {
	return &LauncherSystem{em: em, world: world, cfg: cfg, space: space, textures: ts, rng: rng}
}

// Update dt 为已缩放的游戏时间
func (s *LauncherSystem) Update(dt float64) {
	if s.world.IsOver() || dt <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.LauncherComponent, *components.CelestialBodyComponent](s.em) {
		launcher, _ := ecs.GetComponent[*components.LauncherComponent](s.em, id)
		if launcher.Period <= 0 {
			continue
		}
		launcher.Elapsed += dt
		for launcher.Elapsed >= launcher.Period {
			launcher.Elapsed -= launcher.Period
			s.fire(id, launcher)
		}
	}
}

func (s *LauncherSystem) fire(planet ecs.EntityID, launcher *components.LauncherComponent) {
	center, ok := positionOf(s.em, planet)
	if !ok {
		return
	}
	body, _ := ecs.GetComponent[*components.CelestialBodyComponent](s.em, planet)

	angle := s.rng.Float64() * orbital.TwoPi
	up := orbital.GlobalUp.Rotate(angle)
	pos := center.Add(up.Scale(body.Scale * s.cfg.LauncherDistance))

	entities.NewTorpedo(s.em, s.textures, s.space, s.cfg, pos, up.Neg(), planet)
	launcher.Fired++
	s.world.Launched++
	log.Printf("[Launcher] 发射第 %d 枚鱼雷 -> %s", launcher.Fired, body.Name)

	if s.rng.Float64() >= s.cfg.EnemyFireChance {
		return
	}
	target, ok := positionOf(s.em, s.world.Player)
	if !ok || !alive(s.em, s.world.Player) {
		return
	}
	if dir := target.Sub(pos); !dir.IsZero() {
		entities.NewProjectile(s.em, s.textures, s.space, s.cfg, pos, dir, ecs.InvalidEntity, components.TagPlayer)
	}
}
