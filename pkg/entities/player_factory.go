package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// PlayerSpawnAltitude 出生点离 home 行星表面的高度
const PlayerSpawnAltitude = 1.0

// 飞船贴图直径相对碰撞半径的倍数
const shipSpriteScale = 2.4

// 尾焰参数
var thrustFlameColor = color.RGBA{255, 170, 60, 255}

// NewPlayer 在 home 行星上方创建玩家飞船
//
// 飞船出生在行星"北极"表面上方 PlayerSpawnAltitude 处，处于影响区内，
// 初始参考系为 PLANET。
func NewPlayer(em *ecs.EntityManager, ts TextureSource, space *game.CollisionSpace,
	gp *config.GameplayConfig, home ecs.EntityID) (ecs.EntityID, error) {
	homeTr, ok := ecs.GetComponent[*components.TransformComponent](em, home)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("home planet %d has no transform", home)
	}
	homeBody, ok := ecs.GetComponent[*components.CelestialBodyComponent](em, home)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("home planet %d is not a celestial body", home)
	}

	pos := homeTr.Position.Add(orbital.GlobalUp.Scale(homeBody.Scale + PlayerSpawnAltitude))
	pc := gp.Player

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.RigidBodyComponent{Mass: 1})
	em.AddComponent(id, &components.PlayerComponent{
		Frame:         orbital.FramePlanet,
		Planet:        home,
		PrevPosition:  pos,
		BoostCooldown: components.CooldownTimer{Duration: pc.BoostInterval},
		FireCooldown:  components.CooldownTimer{Duration: gp.Combat.FireInterval},
	})
	em.AddComponent(id, &components.HealthComponent{
		Cell: orbital.NewCell(gp.Health.Max, gp.Health.RegenRate),
	})
	em.AddComponent(id, &components.EnergyComponent{
		Cell: orbital.NewCell(gp.Energy.Max, gp.Energy.RegenRate),
	})
	em.AddComponent(id, &components.ColliderComponent{
		Radius: pc.Radius,
		Tag:    components.TagPlayer,
		Object: space.Add(id, pos, pc.Radius, components.TagPlayer),
	})
	em.AddComponent(id, &components.ParticleEmitterComponent{
		Rate:     60,
		Speed:    3,
		Spread:   0.35,
		Lifetime: 0.35,
		Size:     pc.Radius * 0.6,
		Color:    thrustFlameColor,
	})

	sprite := &components.SpriteComponent{
		Size:  pc.Radius * shipSpriteScale,
		Tint:  color.RGBA{255, 255, 255, 255},
		Layer: components.LayerShip,
	}
	if ts != nil {
		sprite.Image = ts.ShipImage()
	}
	em.AddComponent(id, sprite)

	log.Printf("[PlayerFactory] 玩家 %d 出生于 (%.2f, %.2f)", id, pos.X, pos.Y)
	return id, nil
}

// NewCamera 创建跟随镜头
func NewCamera(em *ecs.EntityManager, cc config.CameraConfig, pos orbital.Vec2, roll float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.CameraComponent{
		Position: pos,
		Roll:     roll,
		Zoom:     cc.Zoom,
		Smoother: orbital.NewAlignmentSmoother(cc.AlignSpeed, cc.AlignThresholdDeg),
	})
	return id
}
