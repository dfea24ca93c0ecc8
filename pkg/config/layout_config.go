package config

// 布局配置常量
// 本文件定义窗口尺寸和 HUD 元素位置（屏幕坐标，Y 轴向下）

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// HUDMarginX HUD 文本左边距
	HUDMarginX = 16.0

	// HUDMarginY HUD 文本上边距
	HUDMarginY = 12.0

	// HUDLineHeight HUD 行高
	HUDLineHeight = 24.0

	// HUDFontSize HUD 字号
	HUDFontSize = 18.0

	// GameOverFontSize 游戏结束横幅字号
	GameOverFontSize = 40.0

	// BarWidth 生命/能量条宽度
	BarWidth = 160.0

	// BarHeight 生命/能量条高度
	BarHeight = 8.0
)
