package game

import (
	"log"

	"github.com/decker502/spacejusticiar/pkg/ecs"
)

// GameOverReason 游戏结束原因
type GameOverReason int

const (
	GameRunning GameOverReason = iota
	GameOverShipDestroyed
	GameOverPlanetDestroyed
)

// Banner 游戏结束横幅文字
func (r GameOverReason) Banner() string {
	switch r {
	case GameOverShipDestroyed:
		return "SHIP DESTROYED"
	case GameOverPlanetDestroyed:
		return "PLANET DESTROYED! GAME OVER!"
	default:
		return ""
	}
}

// WorldState 一局游戏的全局状态
//
// 由 GameScene 创建并显式传给各系统，重新开始时整体丢弃。
type WorldState struct {
	// TimeScale 时间缩放：1 正常，慢动作 < 1，行星毁灭后为 0
	TimeScale float64

	Player     ecs.EntityID
	Camera     ecs.EntityID
	HomePlanet ecs.EntityID

	// SurvivalTime 本局存活时间（游戏时间，受 TimeScale 影响）
	SurvivalTime float64
	// Kills 击落的鱼雷数
	Kills int
	// Launched 已发射的鱼雷数
	Launched int
	// FrameSwitches 参考系切换次数
	FrameSwitches int
	// PlayerHits 玩家被击中次数
	PlayerHits int
	// PlanetHits home 行星被击中次数
	PlanetHits int

	Over    GameOverReason
	NewBest bool

	ShowInfluenceBorders bool
}

// NewWorldState 创建一局新游戏的状态
func NewWorldState() *WorldState {
	return &WorldState{
		TimeScale:  1,
		Player:     ecs.InvalidEntity,
		Camera:     ecs.InvalidEntity,
		HomePlanet: ecs.InvalidEntity,
	}
}

// IsOver 游戏是否已结束
func (w *WorldState) IsOver() bool {
	return w.Over != GameRunning
}

// EndGame 结束游戏，只有第一次调用生效
// 返回是否是本次调用结束了游戏
func (w *WorldState) EndGame(reason GameOverReason) bool {
	if w.IsOver() || reason == GameRunning {
		return false
	}
	w.Over = reason
	if reason == GameOverPlanetDestroyed {
		w.TimeScale = 0
	}
	log.Printf("[WorldState] %s (存活 %.1f 秒, 击落 %d)", reason.Banner(), w.SurvivalTime, w.Kills)
	return true
}

// ScaledDelta 按时间缩放换算本帧的游戏时间
func (w *WorldState) ScaledDelta(dt float64) float64 {
	if dt <= 0 || w.TimeScale <= 0 {
		return 0
	}
	return dt * w.TimeScale
}
