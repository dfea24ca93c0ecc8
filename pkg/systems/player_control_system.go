package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/entities"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// PlayerControlSystem 把玩家意图转换为推力、重力、慢动作和射击
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	world         *game.WorldState
	intent        *PlayerIntent
	cfg           *config.GameplayConfig
	space         *game.CollisionSpace
	textures      entities.TextureSource
	rng           *rand.Rand
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - intent: InputSystem 产出的意图（每帧原地更新）
//   - rng: 变色用的随机源
func NewPlayerControlSystem(em *ecs.EntityManager, world *game.WorldState, intent *PlayerIntent,
	cfg *config.GameplayConfig, space *game.CollisionSpace, ts entities.TextureSource, rng *rand.Rand) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		world:         world,
		intent:        intent,
		cfg:           cfg,
		space:         space,
		textures:      ts,
		rng:           rng,
	}
}

// Update dt 为真实时间（慢动作的能量消耗按真实时间计算）
func (s *PlayerControlSystem) Update(dt float64) {
	em := s.entityManager
	id := s.world.Player
	if !alive(em, id) {
		return
	}

	pc, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	emitter, _ := ecs.GetComponent[*components.ParticleEmitterComponent](em, id)

	if pc.Dead || s.world.IsOver() || tr == nil || rb == nil {
		s.setSlowMotion(pc, false)
		if emitter != nil {
			emitter.Playing = false
		}
		return
	}

	s.updateSlowMotion(pc, dt)
	sdt := s.world.ScaledDelta(dt)

	pc.BoostCooldown = tickCooldown(pc.BoostCooldown, sdt)
	pc.FireCooldown = tickCooldown(pc.FireCooldown, sdt)

	up := playerUp(em, pc, tr.Position)
	right := orbital.Right(up)
	thrustDir := up.Scale(s.intent.Thrust.Y).Add(right.Scale(s.intent.Thrust.X)).Normalized()
	pc.ThrustDir = thrustDir

	pcfg := s.cfg.Player
	if !thrustDir.IsZero() {
		force := thrustDir.Scale(pcfg.Acceleration)
		if s.intent.Boost && !pc.BoostCooldown.Running {
			force = force.Scale(pcfg.BoostScalar)
			pc.BoostCooldown = components.CooldownTimer{Duration: pcfg.BoostInterval, Running: pcfg.BoostInterval > 0}
			log.Printf("[PlayerControl] Boost")
		}
		rb.Force = rb.Force.Add(force)
		rb.Velocity = rb.Velocity.ClampLen(pcfg.MaxVelocity)
	}

	if pc.Frame == orbital.FramePlanet {
		rb.Force = rb.Force.Add(up.Neg().Scale(pcfg.GravityScale))
	}

	if !up.IsZero() {
		tr.Rotation = orbital.AlignmentAngle(up)
	}

	if emitter != nil {
		emitter.Playing = !thrustDir.IsZero()
		if emitter.Playing && thrustDir != pc.LastThrustDir {
			emitter.Direction = thrustDir
			pc.LastThrustDir = thrustDir
		}
	}

	s.updateColor(pc, sdt)
	s.updateFire(pc, tr.Position, up)
}

func (s *PlayerControlSystem) updateSlowMotion(pc *components.PlayerComponent, dt float64) {
	energy, ok := ecs.GetComponent[*components.EnergyComponent](s.entityManager, s.world.Player)
	if !ok {
		s.setSlowMotion(pc, false)
		return
	}

	// 只在按下的那一帧进入慢动作；松开或能量耗尽时退出，之后需要重新按下
	if s.intent.SlowMotionPressed && !energy.Cell.IsEmpty() {
		s.setSlowMotion(pc, true)
	}
	if s.intent.SlowMotionReleased || !s.intent.SlowMotionHeld {
		s.setSlowMotion(pc, false)
		return
	}
	if !pc.InSlowMotion {
		return
	}
	if dt > 0 {
		energy.Cell.Use(s.cfg.Player.EnergyDrainRate * dt)
	}
	if energy.Cell.IsEmpty() {
		s.setSlowMotion(pc, false)
	}
}

func (s *PlayerControlSystem) setSlowMotion(pc *components.PlayerComponent, on bool) {
	if pc.InSlowMotion == on {
		return
	}
	pc.InSlowMotion = on
	if s.world.IsOver() && s.world.TimeScale == 0 {
		return
	}
	if on {
		s.world.TimeScale = s.cfg.Player.SlowMotionScale
		log.Printf("[PlayerControl] 慢动作开启 (x%.2f)", s.world.TimeScale)
	} else {
		s.world.TimeScale = 1
		log.Printf("[PlayerControl] 慢动作结束")
	}
}

func (s *PlayerControlSystem) updateColor(pc *components.PlayerComponent, sdt float64) {
	rate := s.cfg.Player.ColorChangeRate
	if rate <= 0 || s.rng == nil {
		return
	}
	pc.ColorTimer += sdt
	if pc.ColorTimer < rate {
		return
	}
	pc.ColorTimer = 0

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.world.Player)
	if !ok {
		return
	}
	sprite.Tint = s.randomColor()
}

// randomColor 每个通道在 [MinColor, MaxColor] 内随机
func (s *PlayerControlSystem) randomColor() color.RGBA {
	lo, hi := s.cfg.Player.MinColor, s.cfg.Player.MaxColor
	channel := func() uint8 {
		return uint8((lo + s.rng.Float64()*(hi-lo)) * 255)
	}
	return color.RGBA{channel(), channel(), channel(), 255}
}

func (s *PlayerControlSystem) updateFire(pc *components.PlayerComponent, pos, up orbital.Vec2) {
	if !s.intent.Fire || pc.FireCooldown.Running || s.space == nil {
		return
	}

	dir := up
	if s.intent.HasAim {
		if d := s.intent.Aim.Sub(pos); !d.IsZero() {
			dir = d
		}
	}
	if dir.IsZero() {
		return
	}

	cc := s.cfg.Combat
	spawn := pos.Add(dir.Normalized().Scale(s.cfg.Player.Radius + cc.ProjectileRadius))
	entities.NewProjectile(s.entityManager, s.textures, s.space, cc, spawn, dir, s.world.Player, components.TagEnemy)
	pc.FireCooldown = components.CooldownTimer{Duration: cc.FireInterval, Running: cc.FireInterval > 0}
}

// tickCooldown 推进冷却计时器，到时自动停止
func tickCooldown(t components.CooldownTimer, dt float64) components.CooldownTimer {
	if !t.Running {
		return t
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = 0
		t.Running = false
	}
	return t
}
