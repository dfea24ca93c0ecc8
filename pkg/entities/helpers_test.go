package entities

import (
	"github.com/decker502/spacejusticiar/pkg/config"
)

// testStarSystem 测试用的小型星系：恒星 + home 行星 + 卫星
func testStarSystem() *config.StarSystemConfig {
	return &config.StarSystemConfig{
		Name: "Test",
		Bodies: []config.BodyConfig{
			{Name: "Sun", Kind: config.BodyStar, Scale: 10, Color: "#ffcc33"},
			{Name: "Home", Kind: config.BodyPlanet, Parent: "Sun", Scale: 4, OrbitRadius: 50,
				OrbitSpeed: 0.1, Color: "#3a7bd5", Atmosphere: "#88ccff70", Home: true},
			{Name: "Moon", Kind: config.BodyMoon, Parent: "Home", Scale: 1, OrbitRadius: 10,
				OrbitSpeed: 0.5, OrbitAngle: 1.5707963267948966, Color: "#b8b8b8"},
		},
	}
}
