package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 显示设置
	Fullscreen           bool `yaml:"fullscreen"`           // 启动时是否全屏
	ShowInfluenceBorders bool `yaml:"showInfluenceBorders"` // 是否绘制天体影响区边界

	// TelemetryAddr 遥测服务监听地址，空字符串表示关闭
	// 命令行 -telemetry 优先
	TelemetryAddr string `yaml:"telemetryAddr"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:           false,
		ShowInfluenceBorders: true,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败不是致命错误，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或属性不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := loadYAMLProp(sm.gdataManager, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata，降级模式下返回 nil
func (sm *SettingsManager) Save() error {
	if err := saveYAMLProp(sm.gdataManager, settingsObject, settingsProperty, sm.settings); err != nil {
		return err
	}
	if sm.gdataManager != nil {
		log.Printf("[SettingsManager] Settings saved successfully")
	}
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleInfluenceBorders 切换影响区边界显示并立即保存
func (sm *SettingsManager) ToggleInfluenceBorders() bool {
	sm.settings.ShowInfluenceBorders = !sm.settings.ShowInfluenceBorders
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	return sm.settings.ShowInfluenceBorders
}
