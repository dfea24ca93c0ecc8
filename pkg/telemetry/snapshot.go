// Package telemetry 提供可选的本地调试服务器
//
// 游戏循环每个 tick 发布一份不可变的 Snapshot，HTTP/WebSocket 处理函数
// 只读取最新快照，不触碰 ECS 数据，因此游戏逻辑始终保持单线程。
package telemetry

import (
	"fmt"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot 某一 tick 的游戏状态摘要
type Snapshot struct {
	Tick uint64 `json:"tick" msgpack:"tick"`
	// Game 第几局（重新开始后递增）
	Game int `json:"game" msgpack:"game"`

	SurvivalTime float64 `json:"survivalTime" msgpack:"survivalTime"`
	BestSurvival float64 `json:"bestSurvival" msgpack:"bestSurvival"`
	TimeScale    float64 `json:"timeScale" msgpack:"timeScale"`

	// 0~1
	Health float64 `json:"health" msgpack:"health"`
	Energy float64 `json:"energy" msgpack:"energy"`
	Planet float64 `json:"planet" msgpack:"planet"`

	Frame       string  `json:"frame" msgpack:"frame"`
	CurrentBody string  `json:"currentBody,omitempty" msgpack:"currentBody,omitempty"`
	PlayerX     float64 `json:"playerX" msgpack:"playerX"`
	PlayerY     float64 `json:"playerY" msgpack:"playerY"`
	Speed       float64 `json:"speed" msgpack:"speed"`

	Kills         int `json:"kills" msgpack:"kills"`
	Launched      int `json:"launched" msgpack:"launched"`
	FrameSwitches int `json:"frameSwitches" msgpack:"frameSwitches"`
	PlayerHits    int `json:"playerHits" msgpack:"playerHits"`
	PlanetHits    int `json:"planetHits" msgpack:"planetHits"`
	Entities      int `json:"entities" msgpack:"entities"`

	// GameOver 游戏结束横幅，进行中为空
	GameOver string `json:"gameOver,omitempty" msgpack:"gameOver,omitempty"`
}

// SnapshotStore 保存最新快照，写入方是游戏循环，读取方是 HTTP 处理函数
type SnapshotStore struct {
	latest atomic.Pointer[Snapshot]
}

// Publish 发布新快照（复制一份，调用方之后修改 s 不影响读取方）
func (st *SnapshotStore) Publish(s Snapshot) {
	st.latest.Store(&s)
}

// Latest 返回最新快照，尚未发布时返回 nil
func (st *SnapshotStore) Latest() *Snapshot {
	return st.latest.Load()
}

// EncodeSnapshot 用 msgpack 编码快照（WebSocket 推送格式）
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot 解码 EncodeSnapshot 的输出
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}
