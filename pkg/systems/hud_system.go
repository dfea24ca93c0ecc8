package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/spacejusticiar/pkg/components"
	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/ecs"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/orbital"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudTextColor    = color.RGBA{230, 235, 255, 255}
	hudBarBack      = color.RGBA{255, 255, 255, 40}
	healthBarColor  = color.RGBA{235, 80, 80, 255}
	energyBarColor  = color.RGBA{80, 170, 255, 255}
	planetBarColor  = color.RGBA{90, 230, 130, 255}
	gameOverColor   = color.RGBA{255, 90, 90, 255}
	slowMotionColor = color.RGBA{180, 140, 255, 255}
)

// HUDStatus HUD 显示的数据
type HUDStatus struct {
	Health          int // 百分比
	HealthFraction  float64
	Energy          int
	EnergyFraction  float64
	Planet          int
	PlanetFraction  float64
	Frame           orbital.FrameOfReference
	SlowMotion      bool
	SurvivalTime    float64
	BestSurvival    float64
	Kills           int
	GameOver        bool
	GameOverMessage string
}

// HUDSystem 绘制生命、能量、行星完整度、参考系和游戏结束横幅
type HUDSystem struct {
	em    *ecs.EntityManager
	world *game.WorldState
	rm    *game.ResourceManager

	// BestSurvival 历史最长存活时间，由场景在开局时设置
	BestSurvival float64
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(em *ecs.EntityManager, world *game.WorldState, rm *game.ResourceManager) *HUDSystem {
	return &HUDSystem{em: em, world: world, rm: rm}
}

// Status 收集当前 HUD 数据
func (s *HUDSystem) Status() HUDStatus {
	st := HUDStatus{
		Frame:           orbital.FrameGlobal,
		SurvivalTime:    s.world.SurvivalTime,
		BestSurvival:    s.BestSurvival,
		Kills:           s.world.Kills,
		GameOver:        s.world.IsOver(),
		GameOverMessage: s.world.Over.Banner(),
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.world.Player); ok {
		st.Health = health.Cell.Percentage()
		st.HealthFraction = health.Cell.Fraction()
	}
	if energy, ok := ecs.GetComponent[*components.EnergyComponent](s.em, s.world.Player); ok {
		st.Energy = energy.Cell.Percentage()
		st.EnergyFraction = energy.Cell.Fraction()
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.world.Player); ok {
		st.Frame = pc.Frame
		st.SlowMotion = pc.InSlowMotion
	}
	if integrity, ok := ecs.GetComponent[*components.IntegrityComponent](s.em, s.world.HomePlanet); ok {
		st.Planet = integrity.Cell.Percentage()
		st.PlanetFraction = integrity.Cell.Fraction()
	}
	return st
}

// Lines 返回 HUD 左上角的文本行
func (st HUDStatus) Lines() []string {
	lines := []string{
		fmt.Sprintf("HEALTH %d%%", st.Health),
		fmt.Sprintf("ENERGY %d%%", st.Energy),
		fmt.Sprintf("PLANET %d%%", st.Planet),
		fmt.Sprintf("FRAME %s", st.Frame),
		fmt.Sprintf("TIME %.1fs  BEST %.1fs  KILLS %d", st.SurvivalTime, st.BestSurvival, st.Kills),
	}
	if st.SlowMotion {
		lines = append(lines, "SLOW MOTION")
	}
	return lines
}

// Draw 绘制 HUD
func (s *HUDSystem) Draw(screen *ebiten.Image) {
	if s.rm == nil {
		return
	}
	face := s.rm.GetFont(config.HUDFontSize)
	if face == nil {
		return
	}
	st := s.Status()

	bars := []struct {
		fraction float64
		c        color.RGBA
	}{
		{st.HealthFraction, healthBarColor},
		{st.EnergyFraction, energyBarColor},
		{st.PlanetFraction, planetBarColor},
	}

	for i, line := range st.Lines() {
		y := config.HUDMarginY + float64(i)*config.HUDLineHeight
		c := hudTextColor
		if line == "SLOW MOTION" {
			c = slowMotionColor
		}
		drawText(screen, line, face, config.HUDMarginX, y, c, text.AlignStart)

		if i < len(bars) {
			bx := float32(config.HUDMarginX + 130)
			by := float32(y + config.HUDLineHeight/2 - config.BarHeight/2)
			vector.DrawFilledRect(screen, bx, by, config.BarWidth, config.BarHeight, hudBarBack, false)
			vector.DrawFilledRect(screen, bx, by, float32(config.BarWidth*bars[i].fraction), config.BarHeight, bars[i].c, false)
		}
	}

	if st.GameOver {
		big := s.rm.GetFont(config.GameOverFontSize)
		cx := float64(screen.Bounds().Dx()) / 2
		cy := float64(screen.Bounds().Dy()) / 2
		drawText(screen, st.GameOverMessage, big, cx, cy-config.GameOverFontSize, gameOverColor, text.AlignCenter)
		drawText(screen, "Press ENTER to restart", face, cx, cy+config.HUDLineHeight, hudTextColor, text.AlignCenter)
		if s.world.NewBest {
			drawText(screen, "NEW BEST!", face, cx, cy+2*config.HUDLineHeight, planetBarColor, text.AlignCenter)
		}
	}
}

func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, c color.RGBA, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, str, face, op)
}
