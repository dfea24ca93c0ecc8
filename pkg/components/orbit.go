package components

import (
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/orbital"
)

// OrbitComponent 绕父天体运行的轨道
// 父天体只提供轨道中心，不传递自转
type OrbitComponent struct {
	State  orbital.OrbitState
	Parent ecs.EntityID
}
