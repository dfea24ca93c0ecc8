// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来：打开存储、加载字体、
// 启动可选的遥测服务器并创建第一局游戏。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/spacejusticiar/pkg/config"
	"github.com/decker502/spacejusticiar/pkg/game"
	"github.com/decker502/spacejusticiar/pkg/scenes"
	"github.com/decker502/spacejusticiar/pkg/telemetry"
	"github.com/decker502/spacejusticiar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName 存储目录名
const AppName = "spacejusticiar"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TelemetryAddr 遥测服务监听地址（如 "127.0.0.1:6060"），为空时使用设置中的值
	TelemetryAddr string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	input        utils.InputSource
	telemetry    *telemetry.Server

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化数据文件。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 存储不可用时降级为仅内存
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: 无法打开存储: %v (设置和成绩不会保存)", err)
		store = nil
	}
	settings := game.NewSettingsManager(store)
	scores := game.NewScoreManager(store)

	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadFont(); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		input:        utils.NewKeyboardInput(nil),
	}

	addr := cfg.TelemetryAddr
	if addr == "" {
		addr = settings.GetSettings().TelemetryAddr
	}
	if addr != "" {
		server := telemetry.NewServer(addr)
		if err := server.Start(); err != nil {
			log.Printf("[App] Warning: 遥测服务器启动失败: %v", err)
		} else {
			a.telemetry = server
		}
	}

	deps := scenes.GameSceneDeps{
		Resources: resourceManager,
		Scenes:    a.sceneManager,
		Settings:  settings,
		Scores:    scores,
		Input:     a.input,
	}
	if a.telemetry != nil {
		deps.Telemetry = a.telemetry
	}
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(deps)
	})

	first, err := scenes.NewGameScene(deps)
	if err != nil {
		a.stopTelemetry()
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	a.sceneManager.SwitchTo(first)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.input.IsJustPressed(utils.ActionToggleFullscreen) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色 letterbox 并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存当前场景的状态并关闭遥测服务器
// 在 ebiten.RunGame 返回后调用
func (a *App) Shutdown() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: 退出时保存失败")
		}
	}
	a.stopTelemetry()
}

func (a *App) stopTelemetry() {
	if a.telemetry == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.telemetry.Stop(ctx); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}
