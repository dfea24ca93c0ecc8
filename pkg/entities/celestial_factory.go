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

// StarSystem 已创建的星系实体
type StarSystem struct {
	// Bodies 天体名称 -> 实体
	Bodies map[string]ecs.EntityID
	// Order 按配置顺序排列（父天体在前）
	Order []ecs.EntityID
	Home  ecs.EntityID
}

// BuildStarSystem 按配置创建全部天体
//
// 配置必须已通过 Validate（父天体先于子天体声明）。
// home 行星额外获得完整度和鱼雷发射器。
func BuildStarSystem(em *ecs.EntityManager, ts TextureSource, space *game.CollisionSpace,
	sys *config.StarSystemConfig, gp *config.GameplayConfig) (*StarSystem, error) {
	if em == nil || space == nil {
		return nil, fmt.Errorf("entity manager and collision space cannot be nil")
	}
	if sys == nil || gp == nil {
		return nil, fmt.Errorf("star system and gameplay config cannot be nil")
	}

	result := &StarSystem{
		Bodies: make(map[string]ecs.EntityID, len(sys.Bodies)),
		Home:   ecs.InvalidEntity,
	}

	for i := range sys.Bodies {
		body := &sys.Bodies[i]

		parent := ecs.InvalidEntity
		var parentPos orbital.Vec2
		if body.Parent != "" {
			var ok bool
			parent, ok = result.Bodies[body.Parent]
			if !ok {
				return nil, fmt.Errorf("body %q: parent %q not created yet", body.Name, body.Parent)
			}
			if tr, ok := ecs.GetComponent[*components.TransformComponent](em, parent); ok {
				parentPos = tr.Position
			}
		}

		id, err := NewCelestialBody(em, ts, space, body, parent, parentPos)
		if err != nil {
			return nil, err
		}
		result.Bodies[body.Name] = id
		result.Order = append(result.Order, id)

		if body.Home {
			result.Home = id
			em.AddComponent(id, &components.IntegrityComponent{
				Cell: orbital.NewCell(gp.PlanetIntegrity.Max, gp.PlanetIntegrity.RegenRate),
			})
			em.AddComponent(id, &components.LauncherComponent{Period: gp.Combat.LauncherPeriod})
		}
	}

	if result.Home == ecs.InvalidEntity {
		return nil, fmt.Errorf("star system %q has no home planet", sys.Name)
	}

	log.Printf("[CelestialFactory] 星系 %s 创建完成: %d 个天体", sys.Name, len(result.Order))
	return result, nil
}

// NewCelestialBody 创建单个天体实体
//
// 参数:
//   - parent: 轨道父天体，恒星传 ecs.InvalidEntity
//   - parentPos: 父天体当前位置，用于计算初始轨道位置
func NewCelestialBody(em *ecs.EntityManager, ts TextureSource, space *game.CollisionSpace,
	body *config.BodyConfig, parent ecs.EntityID, parentPos orbital.Vec2) (ecs.EntityID, error) {
	bodyColor, err := config.ParseHexColor(body.Color)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("body %q: %w", body.Name, err)
	}
	var atmosphere color.RGBA
	if body.Atmosphere != "" {
		if atmosphere, err = config.ParseHexColor(body.Atmosphere); err != nil {
			return ecs.InvalidEntity, fmt.Errorf("body %q: %w", body.Name, err)
		}
	}

	id := em.CreateEntity()

	pos := orbital.Vec2{}
	if parent != ecs.InvalidEntity {
		state := orbital.OrbitState{
			Angle:        body.OrbitAngle,
			Radius:       body.OrbitRadius,
			AngularSpeed: body.OrbitSpeed,
			Parent:       parentPos,
		}
		pos = orbital.Position(&state)
		em.AddComponent(id, &components.OrbitComponent{State: state, Parent: parent})
	}

	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, &components.CelestialBodyComponent{
		Name:            body.Name,
		Kind:            body.Kind,
		Scale:           body.Scale,
		InfluenceRadius: body.InfluenceRadius(),
		RotationSpeed:   body.RotationSpeed,
		RotateBody:      body.RotationSpeed != 0,
		Color:           bodyColor,
		Atmosphere:      atmosphere,
		Home:            body.Home,
	})

	sprite := &components.SpriteComponent{
		Size:  body.Scale * 2 * game.BodyTextureScale,
		Tint:  color.RGBA{255, 255, 255, 255},
		Layer: components.LayerBody,
	}
	if ts != nil {
		sprite.Image = ts.BodyImage(body.Name, bodyColor, atmosphere)
	}
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.ColliderComponent{
		Radius: body.Scale,
		Tag:    components.TagCollidable,
		Object: space.Add(id, pos, body.Scale, components.TagCollidable),
	})
	em.AddComponent(id, &components.InfluenceZoneComponent{
		Radius: body.InfluenceRadius(),
		Object: space.Add(id, pos, body.InfluenceRadius(), components.TagInfluence),
	})

	return id, nil
}
