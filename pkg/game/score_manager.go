package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// ScoreRecord 持久化的最佳成绩
type ScoreRecord struct {
	BestSurvival float64 `yaml:"bestSurvival"` // 最长存活时间（秒）
	BestKills    int     `yaml:"bestKills"`    // 单局最多击落鱼雷数
	Games        int     `yaml:"games"`        // 已结束的局数
}

const (
	scoreObject   = "score"
	scoreProperty = "best"
)

// ScoreManager 最佳成绩管理器
// 与 SettingsManager 共用 gdata 存储，nil 管理器时只保存在内存中
type ScoreManager struct {
	gdataManager *gdata.Manager
	record       ScoreRecord
}

// NewScoreManager 创建成绩管理器并加载已有记录
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{gdataManager: gdataManager}

	var rec ScoreRecord
	found, err := loadYAMLProp(gdataManager, scoreObject, scoreProperty, &rec)
	if err != nil {
		log.Printf("[ScoreManager] Warning: %v (starting fresh)", err)
	}
	if found {
		sm.record = rec
	}
	return sm
}

// Record 返回当前最佳成绩
func (sm *ScoreManager) Record() ScoreRecord {
	return sm.record
}

// Submit 提交一局的成绩
// 返回是否刷新了最长存活时间
func (sm *ScoreManager) Submit(survival float64, kills int) bool {
	sm.record.Games++

	newBest := survival > sm.record.BestSurvival
	if newBest {
		sm.record.BestSurvival = survival
	}
	if kills > sm.record.BestKills {
		sm.record.BestKills = kills
	}

	if err := saveYAMLProp(sm.gdataManager, scoreObject, scoreProperty, sm.record); err != nil {
		log.Printf("[ScoreManager] Warning: %v", err)
	}
	if newBest {
		log.Printf("[ScoreManager] 新纪录: 存活 %.1f 秒", survival)
	}
	return newBest
}
